package objects

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Deterministic length-prefixed binary encoding, the same shape as the
// teacher's writeLengthPrefixedString/readLengthPrefixedString helpers in
// _examples/NahomAnteneh-vec/internal/objects/commit.go, generalized to the
// blob/commit pair spec.md §3 defines instead of tree/commit/blob.

func writeString(buf *bytes.Buffer, s string) error {
	b := []byte(s)
	if err := binary.Write(buf, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := buf.Write(b)
	return err
}

func readString(buf *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(buf, binary.BigEndian, &n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(buf, b); err != nil {
			return "", err
		}
	}
	return string(b), nil
}

// encodeBlob serializes a Blob into bytes suitable for digesting and for
// on-disk storage: "blob" tag, name, then raw content bytes.
func encodeBlob(b Blob) []byte {
	var buf bytes.Buffer
	buf.WriteString("blob\x00")
	_ = writeString(&buf, b.Name)
	_ = writeString(&buf, string(b.Bytes))
	return buf.Bytes()
}

// DecodeBlob parses bytes produced by encodeBlob.
func DecodeBlob(data []byte) (Blob, error) {
	const tag = "blob\x00"
	if len(data) < len(tag) || string(data[:len(tag)]) != tag {
		return Blob{}, fmt.Errorf("corrupt blob object: bad header")
	}
	r := bytes.NewReader(data[len(tag):])
	name, err := readString(r)
	if err != nil {
		return Blob{}, fmt.Errorf("corrupt blob object: %w", err)
	}
	content, err := readString(r)
	if err != nil {
		return Blob{}, fmt.Errorf("corrupt blob object: %w", err)
	}
	return Blob{Name: name, Bytes: []byte(content)}, nil
}

// encodeCommit serializes a Commit deterministically: parents, timestamp,
// message, then tracked entries sorted by file name so that identical
// commits always produce identical bytes (spec.md §4.A).
func encodeCommit(c Commit) []byte {
	var buf bytes.Buffer
	buf.WriteString("commit\x00")
	_ = writeString(&buf, c.Parent1)
	_ = writeString(&buf, c.Parent2)
	_ = binary.Write(&buf, binary.BigEndian, c.Timestamp.Unix)
	_ = binary.Write(&buf, binary.BigEndian, int32(c.Timestamp.Offset))
	_ = writeString(&buf, c.Message)

	names := sortedTrackedNames(c.Tracked)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(names)))
	for _, name := range names {
		_ = writeString(&buf, name)
		_ = writeString(&buf, c.Tracked[name])
	}
	return buf.Bytes()
}

// DecodeCommit parses bytes produced by encodeCommit.
func DecodeCommit(data []byte) (Commit, error) {
	const tag = "commit\x00"
	if len(data) < len(tag) || string(data[:len(tag)]) != tag {
		return Commit{}, fmt.Errorf("corrupt commit object: bad header")
	}
	r := bytes.NewReader(data[len(tag):])

	var c Commit
	var err error
	if c.Parent1, err = readString(r); err != nil {
		return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
	}
	if c.Parent2, err = readString(r); err != nil {
		return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
	}
	if err = binary.Read(r, binary.BigEndian, &c.Timestamp.Unix); err != nil {
		return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
	}
	var offset int32
	if err = binary.Read(r, binary.BigEndian, &offset); err != nil {
		return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
	}
	c.Timestamp.Offset = int(offset)
	if c.Message, err = readString(r); err != nil {
		return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
	}

	var count uint32
	if err = binary.Read(r, binary.BigEndian, &count); err != nil {
		return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
	}
	c.Tracked = make(map[string]string, count)
	for i := uint32(0); i < count; i++ {
		name, err := readString(r)
		if err != nil {
			return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
		}
		blobDigest, err := readString(r)
		if err != nil {
			return Commit{}, fmt.Errorf("corrupt commit object: %w", err)
		}
		c.Tracked[name] = blobDigest
	}
	return c, nil
}
