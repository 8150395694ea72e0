package replay

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Magic is the 4-byte .ttkr file identifier.
var Magic = [4]byte{'T', 'T', 'K', 'R'}

// Version is the current on-disk format version.
const Version uint8 = 1

// CodecError reports a malformed or unsupported .ttkr file.
type CodecError struct {
	Reason string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("replay: %s", e.Reason)
}

func errf(format string, args ...interface{}) error {
	return &CodecError{Reason: fmt.Sprintf(format, args...)}
}

// WriteFile encodes score and the stream's frames as a complete .ttkr
// file: magic, version, a length-prefixed Score, then frames with no
// outer length prefix (the frame section is terminated by EOF), per
// spec.md §6.
func WriteFile(w io.Writer, score *Score, stream *Stream) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{Version}); err != nil {
		return err
	}

	scoreBytes, err := encodeScore(score)
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(scoreBytes))); err != nil {
		return err
	}
	if _, err := w.Write(scoreBytes); err != nil {
		return err
	}

	for _, f := range stream.Frames() {
		if err := writeFrame(w, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile decodes a complete .ttkr file, per spec.md §6.
func ReadFile(r io.Reader) (*Score, *Stream, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, nil, errf("reading magic: %v", err)
	}
	if magic != Magic {
		return nil, nil, errf("bad magic %q, want %q", magic, Magic)
	}

	var version uint8
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, nil, errf("reading version: %v", err)
	}
	if version != Version {
		return nil, nil, errf("unsupported version %d", version)
	}

	var scoreLen uint32
	if err := binary.Read(r, binary.BigEndian, &scoreLen); err != nil {
		return nil, nil, errf("reading score length: %v", err)
	}
	scoreBytes := make([]byte, scoreLen)
	if _, err := io.ReadFull(r, scoreBytes); err != nil {
		return nil, nil, errf("reading score: %v", err)
	}
	score, err := decodeScore(scoreBytes)
	if err != nil {
		return nil, nil, err
	}

	stream := NewStream()
	seq := 0
	for {
		f, err := readFrame(r, seq)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		stream.Append(f)
		seq++
	}
	return score, stream, nil
}

func writeFrame(w io.Writer, f Frame) error {
	if err := binary.Write(w, binary.BigEndian, uint32(f.Time)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint8(f.Action.Tag)); err != nil {
		return err
	}
	switch f.Action.Tag {
	case Press, Release:
		return binary.Write(w, binary.BigEndian, uint8(f.Action.Key))
	case MousePos:
		if err := binary.Write(w, binary.LittleEndian, f.Action.X); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, f.Action.Y)
	case MouseScroll:
		return binary.Write(w, binary.LittleEndian, f.Action.Scroll)
	default:
		return errf("unknown action tag %d", f.Action.Tag)
	}
}

func readFrame(r io.Reader, seq int) (Frame, error) {
	var timeMS uint32
	if err := binary.Read(r, binary.BigEndian, &timeMS); err != nil {
		return Frame{}, err
	}
	var tag uint8
	if err := binary.Read(r, binary.BigEndian, &tag); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Frame{}, errf("truncated frame after time_ms")
		}
		return Frame{}, err
	}

	action := Action{Tag: ActionTag(tag)}
	switch action.Tag {
	case Press, Release:
		var key uint8
		if err := binary.Read(r, binary.BigEndian, &key); err != nil {
			return Frame{}, errf("truncated frame key payload: %v", err)
		}
		action.Key = Key(key)
	case MousePos:
		if err := binary.Read(r, binary.LittleEndian, &action.X); err != nil {
			return Frame{}, errf("truncated mouse pos x: %v", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &action.Y); err != nil {
			return Frame{}, errf("truncated mouse pos y: %v", err)
		}
	case MouseScroll:
		if err := binary.Read(r, binary.LittleEndian, &action.Scroll); err != nil {
			return Frame{}, errf("truncated mouse scroll: %v", err)
		}
	default:
		return Frame{}, errf("unknown action tag %d", tag)
	}

	return Frame{Time: float32(timeMS), Seq: seq, Action: action}, nil
}

func encodeScore(s *Score) ([]byte, error) {
	var buf bytes.Buffer

	if err := writeString(&buf, s.Username); err != nil {
		return nil, err
	}
	if _, err := buf.Write(s.BeatmapHash[:]); err != nil {
		return nil, err
	}
	if err := writeString(&buf, s.Playmode); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, s.ScoreValue); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.BigEndian, s.MaxCombo); err != nil {
		return nil, err
	}

	if err := binary.Write(&buf, binary.BigEndian, uint16(len(s.Judgments))); err != nil {
		return nil, err
	}
	for _, j := range s.Judgments {
		if err := writeString(&buf, j.Label); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.BigEndian, j.Count); err != nil {
			return nil, err
		}
	}

	if err := binary.Write(&buf, binary.BigEndian, uint16(len(s.Mods))); err != nil {
		return nil, err
	}
	for _, m := range s.Mods {
		if err := writeString(&buf, m); err != nil {
			return nil, err
		}
	}

	if err := binary.Write(&buf, binary.BigEndian, s.Timestamp); err != nil {
		return nil, err
	}

	if err := binary.Write(&buf, binary.BigEndian, uint16(len(s.StatData))); err != nil {
		return nil, err
	}
	keys := sortedStatKeys(s.StatData)
	for _, k := range keys {
		if err := writeString(&buf, k); err != nil {
			return nil, err
		}
		if err := binary.Write(&buf, binary.BigEndian, s.StatData[k]); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

func decodeScore(data []byte) (*Score, error) {
	r := bytes.NewReader(data)
	s := &Score{StatData: make(map[string]float64)}

	var err error
	if s.Username, err = readString(r); err != nil {
		return nil, errf("reading username: %v", err)
	}
	if _, err := io.ReadFull(r, s.BeatmapHash[:]); err != nil {
		return nil, errf("reading beatmap hash: %v", err)
	}
	if s.Playmode, err = readString(r); err != nil {
		return nil, errf("reading playmode: %v", err)
	}
	if err := binary.Read(r, binary.BigEndian, &s.ScoreValue); err != nil {
		return nil, errf("reading score value: %v", err)
	}
	if err := binary.Read(r, binary.BigEndian, &s.MaxCombo); err != nil {
		return nil, errf("reading max combo: %v", err)
	}

	var judgmentCount uint16
	if err := binary.Read(r, binary.BigEndian, &judgmentCount); err != nil {
		return nil, errf("reading judgment count: %v", err)
	}
	s.Judgments = make([]JudgmentCount, judgmentCount)
	for i := range s.Judgments {
		label, err := readString(r)
		if err != nil {
			return nil, errf("reading judgment label: %v", err)
		}
		var count uint32
		if err := binary.Read(r, binary.BigEndian, &count); err != nil {
			return nil, errf("reading judgment count entry: %v", err)
		}
		s.Judgments[i] = JudgmentCount{Label: label, Count: count}
	}

	var modCount uint16
	if err := binary.Read(r, binary.BigEndian, &modCount); err != nil {
		return nil, errf("reading mod count: %v", err)
	}
	s.Mods = make([]string, modCount)
	for i := range s.Mods {
		if s.Mods[i], err = readString(r); err != nil {
			return nil, errf("reading mod tag: %v", err)
		}
	}

	if err := binary.Read(r, binary.BigEndian, &s.Timestamp); err != nil {
		return nil, errf("reading timestamp: %v", err)
	}

	var statCount uint16
	if err := binary.Read(r, binary.BigEndian, &statCount); err != nil {
		return nil, errf("reading stat count: %v", err)
	}
	for i := uint16(0); i < statCount; i++ {
		key, err := readString(r)
		if err != nil {
			return nil, errf("reading stat key: %v", err)
		}
		var value float64
		if err := binary.Read(r, binary.BigEndian, &value); err != nil {
			return nil, errf("reading stat value: %v", err)
		}
		s.StatData[key] = value
	}

	return s, nil
}

func writeString(buf *bytes.Buffer, s string) error {
	if err := binary.Write(buf, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := buf.WriteString(s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func sortedStatKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// insertion sort is fine here: stat maps are small (a handful of
	// named aggregates), and this keeps encodeScore deterministic for
	// the byte-identical round-trip property.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
