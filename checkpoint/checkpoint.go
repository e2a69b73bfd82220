// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint saves and restores variational parameter vectors in
// the .varq container format (framed JSON header, raw float64 payload,
// SHA-256 checksum).
//
// Example:
//
//	ckpt := &checkpoint.Checkpoint{
//	    Header: checkpoint.Header{
//	        Training: &checkpoint.TrainingMeta{Epoch: epoch, Loss: loss, OptimizerType: "Adam"},
//	    },
//	    Params: diff.CollectParams(ansatz),
//	}
//	if err := checkpoint.Save("run.varq", ckpt); err != nil {
//	    return err
//	}
//
//	restored, err := checkpoint.Load("run.varq")
//	if err != nil {
//	    return err
//	}
//	err = diff.Dispatch(ansatz, restored.Params, circuit.OpReplace)
package checkpoint

import (
	"io"

	"github.com/varq-ml/varq/internal/checkpoint"
)

// Checkpoint pairs a parameter vector with its header.
type Checkpoint = checkpoint.Checkpoint

// Header is the JSON header of a .varq file.
type Header = checkpoint.Header

// TrainingMeta records the training state a checkpoint was taken at.
type TrainingMeta = checkpoint.TrainingMeta

// Errors returned when decoding a damaged or foreign file.
var (
	ErrInvalidMagic       = checkpoint.ErrInvalidMagic
	ErrUnsupportedVersion = checkpoint.ErrUnsupportedVersion
	ErrChecksumMismatch   = checkpoint.ErrChecksumMismatch
)

// Save writes the checkpoint to a file.
func Save(path string, c *Checkpoint) error { return checkpoint.Save(path, c) }

// Load reads a checkpoint from a file.
func Load(path string) (*Checkpoint, error) { return checkpoint.Load(path) }

// Read decodes a checkpoint from a stream.
func Read(r io.Reader) (*Checkpoint, error) { return checkpoint.Read(r) }
