package es

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/DjordjeVuckovic/rpn/internal/storage"
	"github.com/DjordjeVuckovic/rpn/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Reader struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func (r *Reader) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	res, err := r.client.Get(r.indexName, id.String()).Do(ctx)
	if err != nil {
		var esErr *types.ElasticsearchError
		if errors.As(err, &esErr) && esErr.Status == http.StatusNotFound {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}

	c, err := doc.toDomain()
	if err != nil {
		return nil, fmt.Errorf("failed to map document %s: %w", id, err)
	}
	return &c, nil
}

func (r *Reader) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Conversion], error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}

	desc := sortorder.Desc
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(page.Offset()).
		Size(page.Size).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &desc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &desc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch list query failed", "error", err, "page", page.Page, "size", page.Size)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	items := make([]domain.Conversion, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		c, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to map document: %w", err)
		}
		items = append(items, c)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}
