package contract

import (
	"strconv"
	"strings"
)

// Payloads are pipe-delimited strings, same wire style as the other contracts
// on this chain: "hexid|name" for registration, "hexid|ballot" for votes,
// "amount" for donations, "round" for settlement.

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		abortWith(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		abortWith(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				abortWith(errMsg)
			}
		}
	}
	return raw
}

// parseUintField is the uint variant used for ballots, rounds and amounts.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		abortWith("invalid " + field)
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		abortWith("invalid " + field)
	}
	return n
}

// parseProjectIdField decodes the hex id, aborting on malformed input.
func parseProjectIdField(val string) ProjectId {
	id, ok := ProjectIdFromHex(strings.TrimSpace(val))
	if !ok {
		abortWith(errInvalidProjectId)
	}
	return id
}

type registerArgs struct {
	Id   ProjectId
	Name string
}

// decodeRegisterArgs unpacks `hexid|name`. An empty id field means the
// contract derives the content hash itself.
func decodeRegisterArgs(payload *string) *registerArgs {
	raw := unwrapPayload(payload, errInvalidPayload)
	parts := strings.SplitN(raw, "|", 2)
	if len(parts) < 2 {
		abortWith(errInvalidPayload)
	}
	args := &registerArgs{Name: strings.TrimSpace(parts[1])}
	if args.Name == "" {
		abortWith(errInvalidPayload)
	}
	if idField := strings.TrimSpace(parts[0]); idField != "" {
		args.Id = parseProjectIdField(idField)
	}
	return args
}

// decodeVoteArgs expects `hexid|ballot`.
func decodeVoteArgs(payload *string) (ProjectId, uint64) {
	raw := unwrapPayload(payload, errInvalidPayload)
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		abortWith(errInvalidPayload)
	}
	id := parseProjectIdField(parts[0])
	ballot := parseUintField(parts[1], "ballot")
	return id, ballot
}

// decodeAmountArg expects a bare decimal amount in native units.
func decodeAmountArg(payload *string) uint64 {
	raw := unwrapPayload(payload, errInvalidPayload)
	return parseUintField(raw, "amount")
}

// decodeRoundArg expects a bare decimal round number.
func decodeRoundArg(payload *string) uint64 {
	raw := unwrapPayload(payload, errInvalidPayload)
	return parseUintField(raw, "round")
}

// decodeProjectIdArg expects a bare hex project id.
func decodeProjectIdArg(payload *string) ProjectId {
	raw := unwrapPayload(payload, errInvalidPayload)
	return parseProjectIdField(raw)
}

// strptr is a tiny helper so we can take a literal string and hand a pointer back quickly.
func strptr(s string) *string { return &s }
