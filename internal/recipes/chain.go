package recipes

import (
	"context"
	"fmt"

	"github.com/kavia-common/recipe-finder-and-saver-207893-207903/internal/session"
)

// ErrorReport selects which failure a Chain surfaces when every candidate fails.
type ErrorReport int

const (
	// ReportFirst surfaces the preferred endpoint's error.
	ReportFirst ErrorReport = iota
	// ReportLast surfaces the final fallback's error.
	ReportLast
)

// Chain is an ordered list of candidate requests for one logical operation.
// The first candidate is the preferred endpoint; the rest are legacy paths.
type Chain struct {
	Candidates []Request
	Report     ErrorReport
}

// NewChain builds a chain that reports the preferred endpoint's error.
func NewChain(candidates ...Request) Chain {
	return Chain{Candidates: candidates}
}

// ReportingLast returns a copy of the chain that surfaces the last error.
func (ch Chain) ReportingLast() Chain {
	ch.Report = ReportLast
	return ch
}

// Run evaluates the chain's candidates in order and returns the first
// successful response. A cancelled context stops the chain immediately.
func (c *Client) Run(ctx context.Context, sess session.Session, ch Chain) (Response, error) {
	if len(ch.Candidates) == 0 {
		return Response{}, fmt.Errorf("empty request chain")
	}
	var first, last error
	for _, req := range ch.Candidates {
		resp, err := c.Do(ctx, sess, req)
		if err == nil {
			return resp, nil
		}
		if first == nil {
			first = err
		}
		last = err
		if ctx.Err() != nil {
			return Response{}, err
		}
	}
	if ch.Report == ReportLast {
		return Response{}, last
	}
	return Response{}, first
}
