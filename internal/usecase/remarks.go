package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

// Remark text is taken verbatim after the prefix and its separating
// space, internal whitespace included
var remarkPattern = regexp.MustCompile(`(?i)^(RIR|RM|RC) (\S.*)$`)

// RemarkHandler executes RM/RC/RIR free-text remarks. Remarks are
// append-only; confidential remarks record the authoring user.
type RemarkHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewRemarkHandler creates the remark handler
func NewRemarkHandler(mirror *PNRMirror, formatter *Formatter) *RemarkHandler {
	return &RemarkHandler{mirror: mirror, formatter: formatter}
}

func (h *RemarkHandler) Name() string { return "RM" }

func (h *RemarkHandler) CanHandle(input string) bool {
	return remarkPattern.MatchString(input)
}

func (h *RemarkHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := remarkPattern.FindStringSubmatch(input)
	kind := strings.ToUpper(m[1])
	text := m[2]

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}

	remark := entity.Remark{
		Kind: kind,
		Text: text,
	}
	if kind == entity.RemarkConfidential {
		remark.AuthorID = sess.UserID
	}
	pnr.Remarks = append(pnr.Remarks, remark)

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, kind+" "+text, "REMARK ADDED")
	return response
}
