package cms

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/wcc-platform/contentschema/page"
)

//go:embed seed/codeofconduct.json
var codeOfConductSeed []byte

// CodeOfConductSeed returns the bundled code of conduct document.
func CodeOfConductSeed() []byte { return append([]byte(nil), codeOfConductSeed...) }

// Seed stores the bundled content for pages that have none yet. It reports
// whether anything was written.
func Seed(ctx context.Context, repo Repository) (bool, error) {
	_, err := repo.FindByID(ctx, page.CodeOfConductPage)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, fmt.Errorf("seed: %w", err)
	}
	if err := repo.Save(ctx, page.CodeOfConductPage, codeOfConductSeed); err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	return true, nil
}
