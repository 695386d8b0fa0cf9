package store

import (
	"context"
	"fmt"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dependency"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/normalize"
)

type resolverStore struct {
	*Store
}

var _ dependency.Resolver = (*resolverStore)(nil)

// ResolveClient returns the id of the client with exactly this name.
func (s *resolverStore) ResolveClient(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, entity.ErrNotFound
	}
	rows, err := s.Execute(ctx, resolveClientQuery(name))
	if err != nil {
		return 0, err
	}
	ids, err := normalize.Ids(rows)
	if err != nil {
		return 0, fmt.Errorf("normalize client id: %w", err)
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("client %q: %w", name, entity.ErrNotFound)
	}
	return ids[0], nil
}

// ResolveKeyword returns the id of the keyword text within the client.
func (s *resolverStore) ResolveKeyword(ctx context.Context, clientId int64, keyword string) (int64, error) {
	ids, err := s.ResolveKeywords(ctx, clientId, []string{keyword})
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("keyword %q: %w", keyword, entity.ErrNotFound)
	}
	return ids[0], nil
}

// ResolveKeywords maps keyword texts to ids in input order. Unknown and
// repeated keywords are dropped.
func (s *resolverStore) ResolveKeywords(ctx context.Context, clientId int64, keywords []string) ([]int64, error) {
	wanted := make([]string, 0, len(keywords))
	seen := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		wanted = append(wanted, k)
	}
	if len(wanted) == 0 {
		return []int64{}, nil
	}

	rows, err := s.Execute(ctx, resolveKeywordsQuery(clientId, wanted))
	if err != nil {
		return nil, err
	}
	found, err := normalize.Keywords(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize keywords: %w", err)
	}
	byText := make(map[string]int64, len(found))
	for _, k := range found {
		if _, ok := byText[k.Keyword]; !ok {
			byText[k.Keyword] = k.Id
		}
	}

	ids := make([]int64, 0, len(wanted))
	for _, k := range wanted {
		if id, ok := byText[k]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
