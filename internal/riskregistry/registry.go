// Package riskregistry resolves destination risk multipliers, optionally
// from a remote registry. Absence of risk data never fails a quote: every
// error path degrades to the static catalog value.
package riskregistry

import (
	"net/http"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"flightcool/internal/catalog"
	"flightcool/internal/model"
)

type Registry struct {
	url    string
	client *http.Client
	cache  sync.Map
}

// New returns a registry backed by the given base URL, or a purely static
// one when url is empty.
func New(url string) *Registry {
	r := &Registry{url: url}
	if url != "" {
		r.client = &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return r
}

// RiskLevel resolves one destination code. Remote lookups are cached for the
// process lifetime.
func (r *Registry) RiskLevel(code string) float64 {
	if r.url == "" || code == "" {
		return catalog.RiskLevel(code)
	}
	if level, ok := r.cache.Load(code); ok {
		return level.(float64)
	}
	level := r.fetch(code)
	r.cache.Store(code, level)
	return level
}

// RiskLevels resolves multiple codes, fetching uncached ones concurrently.
func (r *Registry) RiskLevels(codes []string) map[string]float64 {
	result := make(map[string]float64, len(codes))

	if r.url == "" {
		for _, code := range codes {
			result[code] = catalog.RiskLevel(code)
		}
		return result
	}

	var toFetch []string
	for _, code := range codes {
		if level, ok := r.cache.Load(code); ok {
			result[code] = level.(float64)
		} else {
			toFetch = append(toFetch, code)
		}
	}

	if len(toFetch) == 0 {
		return result
	}

	if len(toFetch) == 1 {
		level := r.fetch(toFetch[0])
		r.cache.Store(toFetch[0], level)
		result[toFetch[0]] = level
		return result
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, code := range toFetch {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			level := r.fetch(code)
			r.cache.Store(code, level)
			mu.Lock()
			result[code] = level
			mu.Unlock()
		}(code)
	}
	wg.Wait()

	return result
}

func (r *Registry) fetch(code string) float64 {
	resp, err := r.client.Get(r.url + "/destinations/" + code)
	if err != nil {
		return catalog.RiskLevel(code)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return catalog.RiskLevel(code)
	}

	var d model.Destination
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return catalog.RiskLevel(code)
	}
	if d.RiskLevel <= 0 {
		return catalog.RiskLevel(code)
	}
	return d.RiskLevel
}
