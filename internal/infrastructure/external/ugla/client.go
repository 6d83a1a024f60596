// Package ugla implements the client for the Ugla exam-schedule
// endpoint. Ugla serves a JSON envelope whose html field carries the
// rendered próftafla fragment; the client parses that fragment into
// departments and their tests.
package ugla

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/ugla-hub/proftafla/internal/domain/exam"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

const (
	examPath  = "/kennsluskra/mod.php"
	userAgent = "proftafla/1.0 (github.com/ugla-hub/proftafla)"
)

// FetchError reports a non-200 response from Ugla.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("ugla: unexpected status code: %d", e.StatusCode)
}

// Config contains configuration for the Ugla client.
type Config struct {
	// BaseURL is the Ugla portal base URL.
	BaseURL string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// Logger for structured logging.
	Logger *logger.Logger
}

// Client is the Ugla exam-schedule client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// NewClient creates a new Ugla client.
func NewClient(cfg Config) *Client {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		log:     log.With(logger.Component("ugla")),
	}
}

// examURL builds the listing URL for a division. Only deild varies; the
// remaining query parameters are fixed.
func (c *Client) examURL(divisionID int) string {
	q := url.Values{}
	q.Set("mod", "proftafla")
	q.Set("deild", strconv.Itoa(divisionID))

	return c.baseURL + examPath + "?" + q.Encode()
}

// FetchDivision fetches and parses the exam listing for one division.
// heading becomes the Heading of the returned result. A non-200 status
// yields a *FetchError; transport and JSON decode failures propagate
// wrapped. An envelope without an html fragment degrades to an empty
// listing with a warning.
func (c *Client) FetchDivision(ctx context.Context, divisionID int, heading string) (*exam.DivisionResult, error) {
	log := c.log.With(
		logger.RequestID(uuid.NewString()),
		logger.DivisionID(divisionID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.examURL(divisionID), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch exam listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var envelope listingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode listing envelope: %w", err)
	}

	if envelope.HTML == "" {
		log.Warn("listing envelope carries no html fragment")
	}

	departments, err := c.parseDepartments(strings.NewReader(envelope.HTML), log)
	if err != nil {
		return nil, err
	}

	log.Debug("fetched exam listing",
		logger.Latency(time.Since(start)),
		logger.Int("departments", len(departments)))

	return &exam.DivisionResult{
		Heading:     heading,
		Departments: departments,
	}, nil
}

// parseDepartments extracts departments from the HTML fragment. Every
// h3 heading is a department boundary and its immediately-following
// sibling table holds the tests. The table layout is positional:
// course, name, type, students, date. A fragment without the expected
// structure yields zero departments, not an error.
func (c *Client) parseDepartments(r io.Reader, log *logger.Logger) ([]exam.Department, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	departments := make([]exam.Department, 0)

	doc.Find("h3").Each(func(_ int, h *goquery.Selection) {
		dept := exam.Department{
			Heading: strings.TrimSpace(h.Text()),
			Tests:   make([]exam.Test, 0),
		}

		h.NextFiltered("table").Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td").Map(func(_ int, cell *goquery.Selection) string {
				return strings.TrimSpace(cell.Text())
			})
			if len(cells) < 5 {
				return
			}

			students, err := strconv.Atoi(cells[3])
			if err != nil {
				// Counted as zero rather than letting a sentinel skew
				// the aggregate.
				log.Warn("non-numeric student count",
					logger.String("course", cells[0]),
					logger.String("value", cells[3]))
				students = 0
			}

			dept.Tests = append(dept.Tests, exam.Test{
				Course:   cells[0],
				Name:     cells[1],
				Type:     cells[2],
				Students: students,
				Date:     cells[4],
			})
		})

		departments = append(departments, dept)
	})

	return departments, nil
}
