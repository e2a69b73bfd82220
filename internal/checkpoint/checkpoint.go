// Package checkpoint persists variational parameter vectors in the .varq
// container format.
//
// A .varq file is a small framed container: magic bytes, format version,
// flags, a JSON header describing the run, the raw little-endian float64
// parameter payload, and a SHA-256 checksum over everything before it.
// Parameter vectors are the flat layout diff.CollectParams produces, so a
// restored vector dispatches straight back onto the same circuit.
package checkpoint

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// Format constants.
const (
	MagicBytes    = "VARQ"
	FormatVersion = 1
	ChecksumSize  = 32 // SHA-256
	MaxHeaderSize = 1 << 20
)

// Flags for the .varq format.
const (
	FlagHasOptimizer uint32 = 1 << 0 // optimizer metadata included
	FlagHasMetadata  uint32 = 1 << 1 // custom metadata included
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("checkpoint: invalid magic bytes")
	ErrUnsupportedVersion = errors.New("checkpoint: unsupported format version")
	ErrChecksumMismatch   = errors.New("checkpoint: checksum mismatch: file may be corrupted")
	ErrHeaderTooLarge     = errors.New("checkpoint: header exceeds maximum size")
)

// Header is the JSON header of a .varq file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	CreatedAt     time.Time         `json:"created_at"`
	NParams       int               `json:"n_params"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Training      *TrainingMeta     `json:"training,omitempty"`
}

// TrainingMeta records where a training run stood when the checkpoint was
// taken.
type TrainingMeta struct {
	Epoch           int            `json:"epoch"`
	Loss            float64        `json:"loss"`
	OptimizerType   string         `json:"optimizer_type"`
	OptimizerConfig map[string]any `json:"optimizer_config,omitempty"`
}

// Checkpoint pairs a parameter vector with its header.
type Checkpoint struct {
	Header Header
	Params []float64
}

// Write encodes the checkpoint to w. The header's FormatVersion, CreatedAt
// and NParams fields are filled in; the rest is taken as given.
func (c *Checkpoint) Write(w io.Writer) error {
	header := c.Header
	header.FormatVersion = FormatVersion
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	header.NParams = len(c.Params)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	if len(headerJSON) > MaxHeaderSize {
		return ErrHeaderTooLarge
	}

	var flags uint32
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	if header.Training != nil {
		flags |= FlagHasOptimizer
	}

	// Everything before the trailing checksum is hashed as written.
	h := sha256.New()
	out := io.MultiWriter(w, h)

	if _, err := out.Write([]byte(MagicBytes)); err != nil {
		return fmt.Errorf("failed to write magic bytes: %w", err)
	}
	if err := binary.Write(out, binary.LittleEndian, uint32(FormatVersion)); err != nil {
		return fmt.Errorf("failed to write version: %w", err)
	}
	if err := binary.Write(out, binary.LittleEndian, flags); err != nil {
		return fmt.Errorf("failed to write flags: %w", err)
	}
	if err := binary.Write(out, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := out.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	payload := make([]byte, 8*len(c.Params))
	for i, v := range c.Params {
		binary.LittleEndian.PutUint64(payload[8*i:], math.Float64bits(v))
	}
	if _, err := out.Write(payload); err != nil {
		return fmt.Errorf("failed to write parameters: %w", err)
	}

	if _, err := w.Write(h.Sum(nil)); err != nil {
		return fmt.Errorf("failed to write checksum: %w", err)
	}
	return nil
}

// Read decodes a checkpoint from r, validating magic, version and checksum.
func Read(r io.Reader) (*Checkpoint, error) {
	h := sha256.New()
	in := io.TeeReader(r, h)

	magic := make([]byte, len(MagicBytes))
	if _, err := io.ReadFull(in, magic); err != nil {
		return nil, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if string(magic) != MagicBytes {
		return nil, ErrInvalidMagic
	}

	var version, flags uint32
	if err := binary.Read(in, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("failed to read version: %w", err)
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if err := binary.Read(in, binary.LittleEndian, &flags); err != nil {
		return nil, fmt.Errorf("failed to read flags: %w", err)
	}

	var headerSize uint64
	if err := binary.Read(in, binary.LittleEndian, &headerSize); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, ErrHeaderTooLarge
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(in, headerJSON); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	if header.NParams < 0 {
		return nil, fmt.Errorf("checkpoint: negative parameter count %d", header.NParams)
	}

	payload := make([]byte, 8*header.NParams)
	if _, err := io.ReadFull(in, payload); err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}
	params := make([]float64, header.NParams)
	for i := range params {
		params[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[8*i:]))
	}

	computed := h.Sum(nil)
	stored := make([]byte, ChecksumSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("failed to read checksum: %w", err)
	}
	for i := range stored {
		if stored[i] != computed[i] {
			return nil, ErrChecksumMismatch
		}
	}

	return &Checkpoint{Header: header, Params: params}, nil
}

// Save writes the checkpoint to a file.
func Save(path string, c *Checkpoint) error {
	//nolint:gosec // G304: file path comes from user input, expected for saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()
	if err := c.Write(file); err != nil {
		return err
	}
	return file.Close()
}

// Load reads a checkpoint from a file.
func Load(path string) (*Checkpoint, error) {
	//nolint:gosec // G304: file path comes from user input, expected for loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return Read(file)
}
