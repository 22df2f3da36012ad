package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var bodyPool = sync.Pool{
	New: func() any {
		return make([]byte, 0, 32)
	},
}

func bypass(header http.Header, secret string) http.Header {
	if secret != "" {
		if header == nil {
			header = http.Header{}
		}
		header.Set(bypassHeader, secret)
	}
	return header
}

func LookupTargeter(baseURL string, skus []string, bypassSecret string) vegeta.Targeter {
	header := bypass(nil, bypassSecret)

	return func(t *vegeta.Target) error {
		sku := skus[rand.IntN(len(skus))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/api/v1/inventory/" + sku
		t.Header = header
		return nil
	}
}

func ReserveTargeter(baseURL string, skus []string, bypassSecret string) vegeta.Targeter {
	header := bypass(http.Header{"Content-Type": []string{"application/json"}}, bypassSecret)

	return func(t *vegeta.Target) error {
		sku := skus[rand.IntN(len(skus))]
		t.Method = http.MethodPost
		t.URL = baseURL + "/api/v1/inventory/" + sku + "/reserve"
		t.Header = header

		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, `{"quantity":%d}`, 1+rand.IntN(3))
		t.Body = buf
		return nil
	}
}

func MixedTargeter(baseURL string, skus []string, reserveRatio float64, bypassSecret string) vegeta.Targeter {
	reserveTarget := ReserveTargeter(baseURL, skus, bypassSecret)
	lookupTarget := LookupTargeter(baseURL, skus, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < reserveRatio {
			return reserveTarget(t)
		}
		return lookupTarget(t)
	}
}
