package analytics

import (
	"math"
	"sort"

	"jobseek/market-service/internal/model"
)

// SalaryMetrics summarizes the average offered salary, where
// avg = (salary_min + salary_max) / 2. Postings missing either bound are
// excluded; Count reports how many contributed.
type SalaryMetrics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// Salaries computes corpus-wide salary metrics. A zero Count means no
// posting carried both bounds; callers render "Negotiable" rather than
// treating it as an error.
func Salaries(corpus []model.JobPosting) SalaryMetrics {
	var avgs []float64
	for _, p := range corpus {
		if p.SalaryMin == nil || p.SalaryMax == nil {
			continue
		}
		avgs = append(avgs, (*p.SalaryMin+*p.SalaryMax)/2)
	}
	if len(avgs) == 0 {
		return SalaryMetrics{}
	}

	sort.Float64s(avgs)
	var sum float64
	for _, a := range avgs {
		sum += a
	}
	median := avgs[len(avgs)/2]
	if len(avgs)%2 == 0 {
		median = (avgs[len(avgs)/2-1] + avgs[len(avgs)/2]) / 2
	}
	return SalaryMetrics{
		Mean:   math.Round(sum / float64(len(avgs))),
		Median: math.Round(median),
		Min:    math.Round(avgs[0]),
		Max:    math.Round(avgs[len(avgs)-1]),
		Count:  len(avgs),
	}
}
