package interfaces

import "github.com/ICI-Laboratories/lmServer/domain"

// NodeSelector picks one node from a candidate set.
//
// Implemented by service.Selector: lowest load hint wins, a missing hint ranks
// last, ties rotate round-robin. Called from service.Router on each forward
// attempt with the candidates that have not been tried yet.
//
//go:generate moq -stub -out mock/node_selector.go -pkg mock . NodeSelector
type NodeSelector interface {
	// Select returns the chosen record and true, or the zero record and false when candidates is empty.
	// Parameter candidates — live records of one kind; input order does not matter, the selector orders internally.
	// Returns: (record, true) on a choice; (zero NodeRecord, false) when there is nothing to choose from.
	// Called from service.Router.Route, up to 1+retryBudget times per request.
	Select(candidates []domain.NodeRecord) (domain.NodeRecord, bool)
}
