package matching

import (
	"context"

	"leadgate/internal/domain/lead"
	"leadgate/internal/infra"
	"leadgate/internal/infra/db"
	"leadgate/internal/pkg/config"

	"github.com/google/uuid"
)

// ZipPrefixMatcher pairs a quote with active businesses serving the same
// category in the same zipcode area. Candidate order is stable (oldest
// account first) so repeat submissions from the same area hit the same set.
type ZipPrefixMatcher struct {
	q   db.Querier
	cfg config.MatchingConfig
}

func NewZipPrefixMatcher(q db.Querier, cfg config.MatchingConfig) *ZipPrefixMatcher {
	return &ZipPrefixMatcher{q: q, cfg: cfg}
}

func (m *ZipPrefixMatcher) FindCandidateBusinesses(ctx context.Context, zipcode lead.Zipcode, category string) ([]uuid.UUID, error) {
	rows, err := m.q.Query(ctx,
		`SELECT id
		 FROM businesses
		 WHERE is_active = true
		   AND category = $1
		   AND zipcode LIKE $2 || '%'
		 ORDER BY created_at ASC, id ASC
		 LIMIT $3`,
		category, zipcode.Prefix(m.cfg.ZipPrefixLen), m.cfg.MaxCandidates,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query candidate businesses", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate business", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidate businesses", err)
	}

	return ids, nil
}
