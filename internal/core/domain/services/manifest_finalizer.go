package services

import (
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/manifest"
	"backoffice/internal/core/domain/model/overpack"
	"backoffice/internal/pkg/errs"
)

// ManifestFinalizer links a batch of overpacks into a new manifest.
//
// Every candidate is checked before any of them is touched, so a rejection leaves
// all overpacks and the manifest exactly as they were. The caller persists the
// manifest and the returned overpacks in one transaction.
type ManifestFinalizer struct{}

func NewManifestFinalizer() ManifestFinalizer {
	return ManifestFinalizer{}
}

// Finalize returns the overpacks it linked, in request order. Repeated overpack ids
// are collapsed to their first occurrence. The first rejection is returned as is.
func (f ManifestFinalizer) Finalize(m *manifest.Manifest, candidates []manifest.Candidate) ([]*overpack.Overpack, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	unique := dedupCandidates(candidates)
	if len(unique) == 0 {
		return nil, errs.NewValueIsRequiredError("overpacks")
	}

	entryPoint := m.EntryPoint()
	for _, c := range unique {
		if err := m.CheckOverpack(c, entryPoint); err != nil {
			return nil, err
		}
		if entryPoint.IsEmpty() {
			entryPoint = c.Overpack.EntryPoint()
		}
	}

	linked := make([]*overpack.Overpack, 0, len(unique))
	for _, c := range unique {
		if err := m.AddOverpack(c); err != nil {
			return nil, err
		}
		linked = append(linked, c.Overpack)
	}
	return linked, nil
}

func dedupCandidates(candidates []manifest.Candidate) []manifest.Candidate {
	seen := make(map[kernel.UUID]struct{}, len(candidates))
	unique := make([]manifest.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Overpack == nil {
			continue
		}
		if _, ok := seen[c.Overpack.ID()]; ok {
			continue
		}
		seen[c.Overpack.ID()] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
