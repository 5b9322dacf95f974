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

package session

import "sync"

// Lease is the global coordination gate shared by every Session served off
// one Store (spec.md §5). Ordinary commands and WATCH hold it in shared
// mode; an EXEC drain takes it exclusively so no other connection's
// mutation can interleave with a transaction's commands.
type Lease struct {
	mu sync.RWMutex
}

// NewLease returns a ready-to-use Lease.
func NewLease() *Lease { return &Lease{} }

func (l *Lease) RLock()   { l.mu.RLock() }
func (l *Lease) RUnlock() { l.mu.RUnlock() }
func (l *Lease) Lock()    { l.mu.Lock() }
func (l *Lease) Unlock()  { l.mu.Unlock() }
