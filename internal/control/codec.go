package control

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/localvcs/snap/internal/index"
	"github.com/localvcs/snap/internal/objects"
	"github.com/localvcs/snap/internal/refs"
)

// The control record's on-disk shape does not need to be deterministic
// (unlike the object store's digest inputs) since it's mutable working
// state, not a content-addressed object — but it is written in the same
// length-prefixed binary idiom as internal/objects/codec.go so the
// repository's two serializers read as one consistent style.

func writeStr(buf *bytes.Buffer, s string) {
	b := []byte(s)
	binary.Write(buf, binary.BigEndian, uint32(len(b)))
	buf.Write(b)
}

func readStr(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, b); err != nil {
			return "", err
		}
	}
	return string(b), nil
}

func writeStrMap(buf *bytes.Buffer, m map[string]string) {
	binary.Write(buf, binary.BigEndian, uint32(len(m)))
	for k, v := range m {
		writeStr(buf, k)
		writeStr(buf, v)
	}
}

func readStrMap(r *bytes.Reader) (map[string]string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string]string, n)
	for i := uint32(0); i < n; i++ {
		k, err := readStr(r)
		if err != nil {
			return nil, err
		}
		v, err := readStr(r)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

func writeStrSet(buf *bytes.Buffer, m map[string]bool) {
	binary.Write(buf, binary.BigEndian, uint32(len(m)))
	for k := range m {
		writeStr(buf, k)
	}
}

func readStrSet(r *bytes.Reader) (map[string]bool, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	m := make(map[string]bool, n)
	for i := uint32(0); i < n; i++ {
		k, err := readStr(r)
		if err != nil {
			return nil, err
		}
		m[k] = true
	}
	return m, nil
}

const recordMagic = "snapctl\x01"

func encodeRecord(r Record) []byte {
	var buf bytes.Buffer
	buf.WriteString(recordMagic)

	writeStr(&buf, r.Refs.ActiveBranch)
	writeStr(&buf, r.Refs.Head)
	writeStrMap(&buf, r.Refs.Branches)
	writeStrMap(&buf, r.Refs.Remotes)

	writeStrMap(&buf, r.Index.StagedAdd)
	writeStrSet(&buf, r.Index.StagedRemove)

	binary.Write(&buf, binary.BigEndian, uint32(len(r.Summaries)))
	for digest, sum := range r.Summaries {
		writeStr(&buf, digest)
		writeStr(&buf, sum.Parent1)
		writeStr(&buf, sum.Parent2)
		binary.Write(&buf, binary.BigEndian, sum.Timestamp.Unix)
		binary.Write(&buf, binary.BigEndian, int32(sum.Timestamp.Offset))
		writeStr(&buf, sum.Message)
	}

	return buf.Bytes()
}

func decodeRecord(data []byte) (Record, error) {
	if len(data) < len(recordMagic) || string(data[:len(recordMagic)]) != recordMagic {
		return Record{}, fmt.Errorf("corrupt control record: bad header")
	}
	r := bytes.NewReader(data[len(recordMagic):])

	rec := Record{Refs: refs.New(), Index: index.New(), Summaries: map[string]objects.Summary{}}
	var err error

	if rec.Refs.ActiveBranch, err = readStr(r); err != nil {
		return Record{}, corrupt(err)
	}
	if rec.Refs.Head, err = readStr(r); err != nil {
		return Record{}, corrupt(err)
	}
	if rec.Refs.Branches, err = readStrMap(r); err != nil {
		return Record{}, corrupt(err)
	}
	if rec.Refs.Remotes, err = readStrMap(r); err != nil {
		return Record{}, corrupt(err)
	}
	if rec.Index.StagedAdd, err = readStrMap(r); err != nil {
		return Record{}, corrupt(err)
	}
	if rec.Index.StagedRemove, err = readStrSet(r); err != nil {
		return Record{}, corrupt(err)
	}

	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return Record{}, corrupt(err)
	}
	for i := uint32(0); i < count; i++ {
		digest, err := readStr(r)
		if err != nil {
			return Record{}, corrupt(err)
		}
		var sum objects.Summary
		if sum.Parent1, err = readStr(r); err != nil {
			return Record{}, corrupt(err)
		}
		if sum.Parent2, err = readStr(r); err != nil {
			return Record{}, corrupt(err)
		}
		if err := binary.Read(r, binary.BigEndian, &sum.Timestamp.Unix); err != nil {
			return Record{}, corrupt(err)
		}
		var offset int32
		if err := binary.Read(r, binary.BigEndian, &offset); err != nil {
			return Record{}, corrupt(err)
		}
		sum.Timestamp.Offset = int(offset)
		if sum.Message, err = readStr(r); err != nil {
			return Record{}, corrupt(err)
		}
		rec.Summaries[digest] = sum
	}

	return rec, nil
}

func corrupt(err error) error {
	return fmt.Errorf("corrupt control record: %w", err)
}
