package cli

import (
	"github.com/lexindo/perundang-cli/internal/adapters/driven/poppler"
	"github.com/lexindo/perundang-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lexindo/perundang-cli/internal/adapters/driven/tesseract"
	"github.com/lexindo/perundang-cli/internal/core/ports/driven"
	"github.com/lexindo/perundang-cli/internal/core/services"
)

// Adapter construction goes through package variables so tests can
// swap in doubles without touching PATH or the home directory.
var (
	newExtractor = func() driven.TextExtractor { return poppler.New() }

	newRenderer = func() driven.PageRenderer { return tesseract.NewRenderer() }

	newRecogniser = func() driven.Recogniser { return tesseract.NewRecogniser() }

	openCatalog = func() (driven.RunCatalog, error) { return sqlite.NewCatalog("") }

	probeTools = func() services.Capabilities {
		return services.ProbeCapabilities(poppler.New(), tesseract.NewRenderer(), tesseract.NewRecogniser())
	}
)
