package service

import (
	"math"
	"sort"
	"sync"

	"github.com/ICI-Laboratories/lmServer/domain"
	"github.com/ICI-Laboratories/lmServer/interfaces"
)

// selector implements interfaces.NodeSelector. The candidate with the lowest
// load hint wins; a missing hint ranks as +Inf, so unhinted nodes are chosen
// only when no hinted candidate exists. Ties rotate round-robin over the tied
// candidates in identity order; cursor is the only piece of shared routing
// state and is advanced together with the decision under mu.
type selector struct {
	mu     sync.Mutex
	cursor uint64
}

// NewSelector creates the node selector. Constructed once at startup so the
// round-robin cursor spans all requests; the cursor lives on the instance, not
// in package state.
//
// Called from cmd when building the balancer.
func NewSelector() interfaces.NodeSelector {
	return &selector{}
}

// Select returns the chosen record and true, or the zero record and false when
// candidates is empty. Input order does not matter: tied candidates are sorted
// by identity before the cursor picks one, so over any run of consecutive
// calls with the same tied set every member is returned once per rotation.
//
// Called from service.Router.Route on each forward attempt.
func (s *selector) Select(candidates []domain.NodeRecord) (domain.NodeRecord, bool) {
	if len(candidates) == 0 {
		return domain.NodeRecord{}, false
	}

	best := math.Inf(1)
	for _, rec := range candidates {
		if rec.LoadHint != nil && *rec.LoadHint < best {
			best = *rec.LoadHint
		}
	}

	tied := make([]domain.NodeRecord, 0, len(candidates))
	for _, rec := range candidates {
		if rec.LoadHint == nil {
			if math.IsInf(best, 1) {
				tied = append(tied, rec)
			}
			continue
		}
		if *rec.LoadHint == best {
			tied = append(tied, rec)
		}
	}

	sort.Slice(tied, func(i, j int) bool { return tied[i].Identity < tied[j].Identity })

	s.mu.Lock()
	idx := int(s.cursor % uint64(len(tied)))
	s.cursor++
	s.mu.Unlock()

	return tied[idx], true
}
