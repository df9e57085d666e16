package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

// checkedPackages are the production packages every policy applies to.
var checkedPackages = []string{
	"github.com/coinbase/cb-rc5-go/pkg/rc5",
	"github.com/coinbase/cb-rc5-go/pkg/rc5/logging",
}

func loadPackages(t *testing.T, mode packages.LoadMode) []*packages.Package {
	t.Helper()

	cfg := &packages.Config{Mode: mode}
	pkgs, err := packages.Load(cfg, checkedPackages...)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}
	if len(pkgs) != len(checkedPackages) {
		t.Fatalf("loaded %d packages, want %d", len(pkgs), len(checkedPackages))
	}
	return pkgs
}
