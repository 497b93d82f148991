package integration

import (
	"context"
	"strings"
	"taskara-review-service/internal/infrastructure/persistence/postgres"
)

// reviewTables lists every table the migrations create.
var reviewTables = []string{"pending_reviewers", "review_requirements"}

// TruncateAll empties the review tables between subtests.
func TruncateAll(ctx context.Context, q postgres.Querier) error {
	_, err := q.Exec(ctx, "TRUNCATE TABLE "+strings.Join(reviewTables, ", "))
	return err
}
