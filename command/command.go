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

import (
	"strings"

	"github.com/rahulkeshervani/redikv/resp"
	"github.com/rahulkeshervani/redikv/store"
)

// Command is any parsed, ready-to-run command. Apply writes exactly one
// top-level response Frame to conn (an Array may nest further frames, but
// the top level is always one Frame per Apply call).
type Command interface {
	Apply(st *store.Store, conn *resp.Conn) error
}

// Multi, Discard, Watch and Exec are parsed like any other command but are
// never routed through Apply: the session dispatcher's transaction state
// machine intercepts them by type before generic dispatch (spec.md §4.5).
type Multi struct{}
type Discard struct{}
type Exec struct{}
type Watch struct{ Keys [][]byte }

// Unknown is produced for any command name the parser does not recognize,
// so that later commands on the same connection can still be served.
type Unknown struct{ Name string }

func (c Unknown) Apply(st *store.Store, conn *resp.Conn) error {
	return conn.WriteFrame(resp.Errf("ERR unknown command '%s'", c.Name))
}

// Parse decodes an Array frame (as produced by the codec for both the
// framed grammar and the inline-command fallback) into a Command. Parse
// errors are plain Go errors (formatted as protocol errors by the
// session); they are never connection-fatal.
func Parse(frame resp.Frame) (any, error) {
	if frame.Kind != resp.KindArray || len(frame.Array) == 0 {
		return nil, protoErrf("expected a command array")
	}
	head := frame.Array[0]
	var name string
	switch head.Kind {
	case resp.KindBulk:
		name = string(head.Bulk)
	case resp.KindSimple:
		name = head.Str
	default:
		return nil, protoErrf("command name must be a bulk or simple string")
	}
	upper := strings.ToUpper(name)
	args := newArgReader(frame.Array[1:])

	switch upper {
	case "PING":
		return parsePing(args)
	case "AUTH":
		return parseAuth(args)
	case "INFO":
		return parseInfo(args)
	case "SELECT":
		return parseSelect(args)
	case "GET":
		return parseGet(args)
	case "SET":
		return parseSet(args)
	case "DEL":
		return parseDel(args)
	case "EXISTS":
		return parseExists(args)
	case "TYPE":
		return parseType(args)
	case "KEYS":
		return parseKeys(args)
	case "SCAN":
		return parseScan(args)
	case "DBSIZE":
		return parseDBSize(args)
	case "FLUSHDB":
		return parseFlushDB(args)
	case "HSET":
		return parseHSet(args)
	case "HGET":
		return parseHGet(args)
	case "HDEL":
		return parseHDel(args)
	case "HEXISTS":
		return parseHExists(args)
	case "HGETALL":
		return parseHGetAll(args)
	case "HKEYS":
		return parseHKeys(args)
	case "HVALS":
		return parseHVals(args)
	case "HLEN":
		return parseHLen(args)
	case "HSCAN":
		return parseHScan(args)
	case "LPUSH":
		return parseLPush(args)
	case "RPUSH":
		return parseRPush(args)
	case "LPOP":
		return parseLPop(args)
	case "RPOP":
		return parseRPop(args)
	case "LRANGE":
		return parseLRange(args)
	case "SADD":
		return parseSAdd(args)
	case "SREM":
		return parseSRem(args)
	case "SMEMBERS":
		return parseSMembers(args)
	case "ZADD":
		return parseZAdd(args)
	case "ZRANGE":
		return parseZRange(args)
	case "TTL":
		return parseTTL(args)
	case "PTTL":
		return parsePTTL(args)
	case "JSON.SET":
		return parseJSONSet(args)
	case "JSON.GET":
		return parseJSONGet(args)
	case "MULTI":
		if err := args.finish(); err != nil {
			return nil, err
		}
		return Multi{}, nil
	case "EXEC":
		if err := args.finish(); err != nil {
			return nil, err
		}
		return Exec{}, nil
	case "DISCARD":
		if err := args.finish(); err != nil {
			return nil, err
		}
		return Discard{}, nil
	case "WATCH":
		return parseWatch(args)
	default:
		return Unknown{Name: name}, nil
	}
}
