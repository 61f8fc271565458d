package kayak

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// eurPricePattern matches amounts like "434 €" or "1 234€", tolerating the
// narrow and non-breaking spaces Kayak uses as thousands separators.
var eurPricePattern = regexp.MustCompile(`(\d[\d \x{00a0}\x{202f}]{0,10})\s?€`)

var nonDigitPattern = regexp.MustCompile(`[^\d]`)

func newKayakImpl(cfg Config) *kayakImpl {
	return &kayakImpl{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		flightClient: &http.Client{Timeout: cfg.FlightTimeout},
		hotelClient:  &http.Client{Timeout: cfg.HotelTimeout},
	}
}

// SearchFlights scrapes a round-trip flight results page for the cheapest price
func (k *kayakImpl) SearchFlights(ctx context.Context, origin, destination, departDate, returnDate string) (*FlightQuote, error) {
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("kayak: origin and destination airport codes are required")
	}
	if departDate == "" || returnDate == "" {
		return nil, fmt.Errorf("kayak: depart and return dates are required")
	}

	reqURL := fmt.Sprintf("%s/flights/%s-%s/%s/%s?sort=bestflight_a",
		k.baseURL, origin, destination, departDate, returnDate)

	html, err := k.fetch(ctx, k.flightClient, reqURL)
	if err != nil {
		return nil, err
	}

	price := PriceNotFound
	if m := eurPricePattern.FindString(html); m != "" {
		price = strings.TrimSpace(m)
	}

	return &FlightQuote{
		Origin:        origin,
		Destination:   destination,
		DepartDate:    departDate,
		ReturnDate:    returnDate,
		CheapestPrice: price,
		URL:           reqURL,
		ScrapedAt:     time.Now().UTC(),
	}, nil
}

// SearchHotels scrapes a stays results page and summarizes the lowest prices
func (k *kayakImpl) SearchHotels(ctx context.Context, slug string, placeID int, checkin, checkout string) (*HotelQuote, error) {
	if slug == "" || placeID == 0 {
		return nil, fmt.Errorf("kayak: stay slug and place ID are required")
	}
	if checkin == "" || checkout == "" {
		return nil, fmt.Errorf("kayak: checkin and checkout dates are required")
	}

	reqURL := fmt.Sprintf("%s/hotels/%s-p%d/%s/%s/2adults;map?sort=rank_a",
		k.baseURL, slug, placeID, checkin, checkout)

	html, err := k.fetch(ctx, k.hotelClient, reqURL)
	if err != nil {
		return nil, err
	}

	prices := extractEURPrices(html)
	sort.Ints(prices)
	if len(prices) > hotelSampleSize {
		prices = prices[:hotelSampleSize]
	}

	quote := &HotelQuote{
		Checkin:    checkin,
		Checkout:   checkout,
		SampleSize: len(prices),
		URL:        reqURL,
		ScrapedAt:  time.Now().UTC(),
	}

	if len(prices) > 0 {
		sum := 0
		for _, p := range prices {
			sum += p
		}
		quote.MinPriceEUR = prices[0]
		quote.AvgPriceEUR = sum / len(prices)
	}

	return quote, nil
}

func (k *kayakImpl) fetch(ctx context.Context, client *http.Client, reqURL string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("kayak: failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.8")

	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("kayak: failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("kayak: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("kayak: failed to read response: %w", err)
	}

	return string(body), nil
}

// extractEURPrices pulls every euro amount out of a page as integers.
func extractEURPrices(html string) []int {
	matches := eurPricePattern.FindAllStringSubmatch(html, -1)
	prices := make([]int, 0, len(matches))
	for _, m := range matches {
		digits := nonDigitPattern.ReplaceAllString(m[1], "")
		if digits == "" {
			continue
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			continue
		}
		prices = append(prices, n)
	}
	return prices
}
