package filefilter

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// updateHashAndSave writes o into s unless s already has it.
// If o has no hash yet, it is decoded back from s so its hash gets set.
func updateHashAndSave(ctx context.Context, o object.Object, s storer.EncodedObjectStorer) error {
	hasHash := !o.ID().IsZero()
	if hasHash && s.HasEncodedObject(o.ID()) == nil {
		logger.Debug("object already in storage", "hash", o.ID().String())
		return nil
	}

	otype := o.Type()
	encoded := s.NewEncodedObject()
	if err := o.Encode(encoded); err != nil {
		return fmt.Errorf("failed to encode %s: %w", otype, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	hash, err := s.SetEncodedObject(encoded)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", otype, err)
	}
	if hasHash {
		return nil
	}

	saved, err := s.EncodedObject(otype, hash)
	if err != nil {
		return fmt.Errorf("failed to read %s %s back: %w", otype, hash, err)
	}

	return o.Decode(saved)
}
