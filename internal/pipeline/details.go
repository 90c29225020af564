package pipeline

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/santescan/santescan/constants"
	"github.com/santescan/santescan/gen/ent"
	"github.com/santescan/santescan/gen/ent/analysisdetail"
	"github.com/santescan/santescan/internal/repository"
)

// ParsedDetail is one recognized result line from the raw text.
type ParsedDetail struct {
	Name           string
	Value          *float64
	Unit           *string
	ReferenceRange string
	Status         constants.DetailStatus
}

// One result line: name, numeric value, optional unit, optional
// "(low - high)" reference range. Everything else is skipped.
var reDetailLine = regexp.MustCompile(
	`^\s*([\p{L}][\p{L}0-9 .'’\-]{1,60}?)\s*[:\t]?\s+` +
		`([0-9]+(?:[.,][0-9]+)?)` +
		`(?:\s+([\p{L}µ%][\p{L}µ%0-9/.²³]*))?` +
		`(?:\s*\(?\s*([0-9]+(?:[.,][0-9]+)?)\s*[-–]\s*([0-9]+(?:[.,][0-9]+)?)\s*\)?)?\s*$`)

var reHasLetters = regexp.MustCompile(`\p{L}{3,}`)

// ParseDetails extracts result lines from raw report text. Unparsable
// lines are skipped; this is plumbing, not interpretation.
func ParseDetails(rawText string) []ParsedDetail {
	var out []ParsedDetail
	for _, line := range strings.Split(rawText, "\n") {
		m := reDetailLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if !reHasLetters.MatchString(name) {
			continue
		}
		v, err := parseDecimal(m[2])
		if err != nil {
			continue
		}

		d := ParsedDetail{Name: name, Value: &v, Status: constants.DetailNormal}
		if m[3] != "" {
			unit := m[3]
			d.Unit = &unit
		}
		if m[4] != "" && m[5] != "" {
			low, lerr := parseDecimal(m[4])
			high, herr := parseDecimal(m[5])
			if lerr == nil && herr == nil && high > low {
				d.ReferenceRange = m[4] + " - " + m[5]
				d.Status = classifyValue(v, low, high)
			}
		}
		out = append(out, d)
	}
	return out
}

// classifyValue compares a value against its reference range. Purely
// mechanical: outside the range by more than the range width counts as
// critical.
func classifyValue(v, low, high float64) constants.DetailStatus {
	width := high - low
	switch {
	case v < low-width || v > high+width:
		return constants.DetailCritical
	case v < low:
		return constants.DetailLow
	case v > high:
		return constants.DetailHigh
	default:
		return constants.DetailNormal
	}
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// DetailStage parses result lines out of a durable analysis and stores
// them as detail rows. Failure here never affects the analysis itself.
type DetailStage struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDetailStage(client *ent.Client, logger *slog.Logger) *DetailStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailStage{client: client, logger: logger}
}

// Run implements async.Stage. Re-running replaces previous lines, so a
// requeued job stays idempotent.
func (s *DetailStage) Run(ctx context.Context, analysisID uuid.UUID) error {
	a, err := s.client.Analysis.Get(ctx, analysisID)
	if err != nil {
		return err
	}

	parsed := ParseDetails(a.RawText)
	if len(parsed) == 0 {
		s.logger.Info("no detail lines recognized", "analysis_id", analysisID)
		return nil
	}

	err = repository.WithTx(ctx, s.client, func(tx *ent.Tx) error {
		if _, err := tx.AnalysisDetail.Delete().
			Where(analysisdetail.AnalysisID(analysisID)).
			Exec(ctx); err != nil {
			return err
		}
		builders := make([]*ent.AnalysisDetailCreate, len(parsed))
		for i, d := range parsed {
			builders[i] = tx.AnalysisDetail.Create().
				SetAnalysisID(analysisID).
				SetParameterName(d.Name).
				SetNillableValue(d.Value).
				SetNillableUnit(d.Unit).
				SetReferenceRange(d.ReferenceRange).
				SetStatus(string(d.Status))
		}
		_, err := tx.AnalysisDetail.CreateBulk(builders...).Save(ctx)
		return err
	})
	if err != nil {
		return err
	}

	s.logger.Info("detail lines stored", "analysis_id", analysisID, "count", len(parsed))
	return nil
}
