/*
Copyright (C) 2026  redikv contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package command

// parseWatch builds a Watch value out of one or more key arguments. Watch
// is never Applied directly: the session dispatcher intercepts it to take
// version snapshots before any transaction is opened (spec.md §4.5).
func parseWatch(a *argReader) (any, error) {
	if a.len() == 0 {
		return nil, protoErrf("wrong number of arguments for 'watch' command")
	}
	keys := make([][]byte, 0, a.len())
	for a.len() > 0 {
		k, err := a.nextBytes()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return Watch{Keys: keys}, nil
}
