package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"madr/internal/domain/entity"
	"madr/internal/domain/service"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookDocument is the indexed shape of a book. The document id is the book id.
type bookDocument struct {
	Title      string `json:"titulo"`
	Year       int    `json:"ano"`
	NovelistID string `json:"romancista_id"`
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

// elasticIndex implements CatalogIndex on an Elasticsearch index
type elasticIndex struct {
	client *elasticsearch.Client
	index  string
}

// NewElasticIndex returns a CatalogIndex storing books in the given index.
func NewElasticIndex(client *elasticsearch.Client, index string) service.CatalogIndex {
	return &elasticIndex{
		client: client,
		index:  index,
	}
}

func (idx *elasticIndex) IndexBook(ctx context.Context, book *entity.Book) error {
	var buf bytes.Buffer
	doc := bookDocument{
		Title:      book.Title,
		Year:       book.Year,
		NovelistID: book.NovelistID.String(),
	}
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return errors.WithStack(err)
	}

	res, err := idx.client.Index(idx.index, &buf,
		idx.client.Index.WithContext(ctx),
		idx.client.Index.WithDocumentID(book.ID.String()),
		idx.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return errors.Wrap(err, "index book")
	}

	return checkResponse(res, "index book")
}

// RemoveBook deletes the book document. A document that is already gone is not an error.
func (idx *elasticIndex) RemoveBook(ctx context.Context, id uuid.UUID) error {
	res, err := idx.client.Delete(idx.index, id.String(),
		idx.client.Delete.WithContext(ctx),
		idx.client.Delete.WithRefresh("true"),
	)
	if err != nil {
		return errors.Wrap(err, "remove book")
	}
	if res.StatusCode == http.StatusNotFound {
		drain(res)

		return nil
	}

	return checkResponse(res, "remove book")
}

func (idx *elasticIndex) SearchBooks(ctx context.Context, query string, page entity.Page) ([]uuid.UUID, error) {
	page = page.Normalize()

	body := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"titulo": map[string]any{
					"query":     query,
					"fuzziness": "AUTO",
				},
			},
		},
		"_source": false,
		"from":    page.Offset,
		"size":    page.Limit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := idx.client.Search(
		idx.client.Search.WithContext(ctx),
		idx.client.Search.WithIndex(idx.index),
		idx.client.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, errors.Wrap(err, "search books")
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.Errorf("search books: elasticsearch returned %s", res.Status())
	}

	var r searchResponse
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, errors.Wrap(err, "decode search response")
	}

	ids := make([]uuid.UUID, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			// Not a book document.
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func checkResponse(res *esapi.Response, op string) error {
	defer drain(res)

	if res.IsError() {
		return errors.Errorf("%s: elasticsearch returned %s", op, res.Status())
	}

	return nil
}

func drain(res *esapi.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}
