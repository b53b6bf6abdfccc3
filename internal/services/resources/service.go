package resources

import (
	"context"

	"audithook/internal/domain"
	"audithook/internal/ports"
)

var catalog = []domain.Resource{
	{
		ID:          "1",
		Title:       "Uniswap v4 Hook Development",
		Description: "Learn about developing custom hooks for Uniswap v4",
		URL:         "https://docs.uniswap.org/contracts/v4/quickstart/hooks/setup",
	},
	{
		ID:          "2",
		Title:       "Base Smart Contract Best Practices",
		Description: "Official guidelines for secure smart contracts on Base",
		URL:         "https://docs.base.org/use-cases/defi-your-app",
	},
	{
		ID:          "3",
		Title:       "Gas Optimization Techniques",
		Description: "How to reduce gas costs in your smart contracts on Base",
		URL:         "https://docs.base.org/use-cases/go-gasless",
	},
	{
		ID:          "4",
		Title:       "Smart Wallet Integration",
		Description: "Learn how to integrate Smart Wallet with your DeFi applications",
		URL:         "https://docs.base.org/identity/smart-wallet/quickstart",
	},
}

// Service serves the fixed resource catalog.
type Service struct{}

var _ ports.Resources = (*Service)(nil)

func New() *Service { return &Service{} }

// List returns a copy of the catalog so callers cannot mutate it.
func (s *Service) List(ctx context.Context) []domain.Resource {
	out := make([]domain.Resource, len(catalog))
	copy(out, catalog)
	return out
}
