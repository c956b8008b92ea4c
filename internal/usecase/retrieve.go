package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/repository"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
)

var retrievePattern = regexp.MustCompile(`(?i)^RT([A-Z0-9]{6})$`)

// RetrieveHandler executes RT<locator>, re-hydrating a persisted PNR
// into the session for further editing
type RetrieveHandler struct {
	repo      repository.PNRRepository
	formatter *Formatter
	logger    logger.Logger
}

// NewRetrieveHandler creates the RT handler
func NewRetrieveHandler(repo repository.PNRRepository, formatter *Formatter, log logger.Logger) *RetrieveHandler {
	return &RetrieveHandler{
		repo:      repo,
		formatter: formatter,
		logger:    log,
	}
}

func (h *RetrieveHandler) Name() string { return "RT" }

func (h *RetrieveHandler) CanHandle(input string) bool {
	return retrievePattern.MatchString(input)
}

func (h *RetrieveHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := retrievePattern.FindStringSubmatch(strings.ToUpper(input))
	locator := m[1]

	pnr, err := h.repo.FindByLocator(ctx, locator)
	if err != nil {
		h.logger.Error("retrieve failed", "recordLocator", locator, "error", err)
		return "SYSTEM ERROR - TRY AGAIN"
	}
	if pnr == nil {
		// Session state stays untouched on a miss
		return "NO MATCH FOR RECORD LOCATOR " + locator
	}

	sess.SetCurrent(pnr)
	return h.formatter.FormatPNR(pnr)
}
