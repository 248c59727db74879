package contract

import (
	"errors"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/holiman/uint256"

	"quadratic_funding/sdk"
)

// State blobs are JSON encoded with tinyjson's writer/lexer so the contract
// stays TinyGo-friendly. 128-bit accumulators travel as decimal strings;
// field order is fixed so encodings stay deterministic.

func writeU128Field(w *jwriter.Writer, name string, v *uint256.Int) {
	w.RawByte('"')
	w.RawString(name)
	w.RawString("\":")
	w.String(v.Dec())
}

func readU128(in *jlexer.Lexer, dst *uint256.Int) {
	s := in.String()
	v, err := uint256.FromDecimal(s)
	if err != nil {
		in.AddError(errors.New("bad u128 literal"))
		return
	}
	dst.Set(v)
}

// encodeProject serializes a project record for the host kv store.
func encodeProject(p *Project) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"owner":`)
	w.String(p.Owner.String())
	w.RawString(`,"name":`)
	w.String(p.Name)
	w.RawString(`,"round":`)
	w.Uint64(p.Round)
	w.RawByte(',')
	writeU128Field(&w, "total_votes", &p.TotalVotes)
	w.RawByte(',')
	writeU128Field(&w, "support_area", &p.SupportArea)
	w.RawByte(',')
	writeU128Field(&w, "grants", &p.Grants)
	w.RawByte(',')
	writeU128Field(&w, "withdrew", &p.Withdrew)
	w.RawByte('}')
	buf, err := w.BuildBytes()
	if err != nil {
		abortWith(errCorruptState)
	}
	return string(buf)
}

// decodeProject parses a stored project blob, nil on malformed data.
func decodeProject(data string) *Project {
	in := jlexer.Lexer{Data: []byte(data)}
	p := &Project{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "owner":
			p.Owner = sdk.Address(in.String())
		case "name":
			p.Name = in.String()
		case "round":
			p.Round = in.Uint64()
		case "total_votes":
			readU128(&in, &p.TotalVotes)
		case "support_area":
			readU128(&in, &p.SupportArea)
		case "grants":
			readU128(&in, &p.Grants)
		case "withdrew":
			readU128(&in, &p.Withdrew)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() != nil {
		return nil
	}
	return p
}

// encodePool serializes the pool aggregates.
func encodePool(pool *PoolAccount) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	writeU128Field(&w, "support_pool", &pool.SupportPool)
	w.RawByte(',')
	writeU128Field(&w, "pre_tax_support_pool", &pool.PreTaxSupportPool)
	w.RawByte(',')
	writeU128Field(&w, "total_tax", &pool.TotalTax)
	w.RawByte(',')
	writeU128Field(&w, "total_support_area", &pool.TotalSupportArea)
	w.RawByte('}')
	buf, err := w.BuildBytes()
	if err != nil {
		abortWith(errCorruptState)
	}
	return string(buf)
}

func decodePool(data string) *PoolAccount {
	in := jlexer.Lexer{Data: []byte(data)}
	pool := &PoolAccount{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "support_pool":
			readU128(&in, &pool.SupportPool)
		case "pre_tax_support_pool":
			readU128(&in, &pool.PreTaxSupportPool)
		case "total_tax":
			readU128(&in, &pool.TotalTax)
		case "total_support_area":
			readU128(&in, &pool.TotalSupportArea)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() != nil {
		return nil
	}
	return pool
}

// encodeConfig keeps the init blob tiny.
func encodeConfig(cfg *ContractConfig) string {
	w := jwriter.Writer{}
	w.RawByte('{')
	w.RawString(`"admin":`)
	w.String(cfg.Admin.String())
	w.RawByte('}')
	buf, err := w.BuildBytes()
	if err != nil {
		abortWith(errCorruptState)
	}
	return string(buf)
}

func decodeConfig(data string) *ContractConfig {
	in := jlexer.Lexer{Data: []byte(data)}
	cfg := &ContractConfig{}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "admin":
			cfg.Admin = sdk.Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if in.Error() != nil {
		return nil
	}
	return cfg
}

// encodeIdList serializes the project index as a JSON array of hex ids.
func encodeIdList(ids []ProjectId) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i := range ids {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(ids[i].String())
	}
	w.RawByte(']')
	buf, err := w.BuildBytes()
	if err != nil {
		abortWith(errCorruptState)
	}
	return string(buf)
}

func decodeIdList(data string) []ProjectId {
	in := jlexer.Lexer{Data: []byte(data)}
	ids := []ProjectId{}
	in.Delim('[')
	for !in.IsDelim(']') {
		id, ok := ProjectIdFromHex(in.String())
		if !ok {
			return nil
		}
		ids = append(ids, id)
		in.WantComma()
	}
	in.Delim(']')
	if in.Error() != nil {
		return nil
	}
	return ids
}
