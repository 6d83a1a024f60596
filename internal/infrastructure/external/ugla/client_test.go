package ugla

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ugla-hub/proftafla/pkg/logger"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Logger:  logger.Discard(),
	})
}

// envelopeHandler serves the given HTML fragment wrapped in the Ugla
// JSON envelope.
func envelopeHandler(t *testing.T, html string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/kennsluskra/mod.php", r.URL.Path)
		assert.Equal(t, "proftafla", r.URL.Query().Get("mod"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]string{"html": html}))
	}
}

func TestFetchDivision(t *testing.T) {
	fragment, err := os.ReadFile("testdata/proftafla_fragment.html")
	require.NoError(t, err)

	var gotDeild string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDeild = r.URL.Query().Get("deild")
		envelopeHandler(t, string(fragment))(w, r)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	res, err := c.FetchDivision(context.Background(), 3, "Hugvísindasvið")
	require.NoError(t, err)

	assert.Equal(t, "3", gotDeild)
	assert.Equal(t, "Hugvísindasvið", res.Heading)
	require.Len(t, res.Departments, 2)

	hag := res.Departments[0]
	assert.Equal(t, "Hagfræðideild", hag.Heading, "heading text is trimmed")
	require.Len(t, hag.Tests, 2)
	assert.Equal(t, "HAG101G", hag.Tests[0].Course)
	assert.Equal(t, "Inngangur að hagfræði", hag.Tests[0].Name)
	assert.Equal(t, "Skriflegt", hag.Tests[0].Type)
	assert.Equal(t, 42, hag.Tests[0].Students)
	assert.Equal(t, "9. desember kl. 09:00", hag.Tests[0].Date)
	assert.Equal(t, 17, hag.Tests[1].Students)

	laga := res.Departments[1]
	assert.Equal(t, "Lagadeild", laga.Heading)
	require.Len(t, laga.Tests, 1)
	// Non-numeric student count is guarded to zero.
	assert.Equal(t, 0, laga.Tests[0].Students)
	assert.Equal(t, "Munnlegt", laga.Tests[0].Type)
}

func TestFetchDivisionNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.FetchDivision(context.Background(), 1, "Félagsvísindasvið")
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.StatusCode)
}

func TestFetchDivisionBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	_, err := c.FetchDivision(context.Background(), 1, "Félagsvísindasvið")
	require.Error(t, err)

	var fetchErr *FetchError
	assert.False(t, errors.As(err, &fetchErr), "decode failure is not a FetchError")
}

func TestFetchDivisionEmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, ""))
	defer srv.Close()

	c := newTestClient(srv.URL)

	res, err := c.FetchDivision(context.Background(), 2, "Heilbrigðisvísindasvið")
	require.NoError(t, err)
	assert.Equal(t, "Heilbrigðisvísindasvið", res.Heading)
	assert.NotNil(t, res.Departments)
	assert.Empty(t, res.Departments)
}

func TestParseDepartmentsHeadingWithoutTable(t *testing.T) {
	c := newTestClient("http://ugla.test")

	fragment := `<h3>Tómstundadeild</h3><p>Engin próf á skrá.</p>`

	departments, err := c.parseDepartments(strings.NewReader(fragment), logger.Discard())
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "Tómstundadeild", departments[0].Heading)
	assert.Empty(t, departments[0].Tests)
}

func TestParseDepartmentsShortRows(t *testing.T) {
	c := newTestClient("http://ugla.test")

	// Rows with fewer than five cells are skipped.
	fragment := `<h3>Lagadeild</h3><table><tbody>
		<tr><td>LÖG102G</td><td>Almenn lögfræði</td></tr>
		<tr><td>LÖG103G</td><td>Réttarsaga</td><td>Skriflegt</td><td>8</td><td>15. desember kl. 13:30</td></tr>
	</tbody></table>`

	departments, err := c.parseDepartments(strings.NewReader(fragment), logger.Discard())
	require.NoError(t, err)
	require.Len(t, departments, 1)
	require.Len(t, departments[0].Tests, 1)
	assert.Equal(t, "LÖG103G", departments[0].Tests[0].Course)
	assert.Equal(t, 8, departments[0].Tests[0].Students)
}
