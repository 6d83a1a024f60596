package ugla

// listingEnvelope is the JSON wrapper Ugla returns for module requests.
// The rendered próftafla fragment lives in the html field; other fields
// of the envelope are ignored.
type listingEnvelope struct {
	HTML string `json:"html"`
}
