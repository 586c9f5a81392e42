package store

import (
	"encoding/json"
	"fmt"
	"time"

	"docsearch/internal/domain"
	"docsearch/internal/port"
	"go.etcd.io/bbolt"
)

var _ port.Manifest = (*BoltStore)(nil)

var (
	bucketDocs  = []byte("docs")
	bucketStats = []byte("stats")
)

// BoltStore is the document manifest kept next to the index file.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) DB() *bbolt.DB {
	return s.db
}

type docMeta struct {
	ModTime int64 `json:"mod_time"`
	Pages   int   `json:"pages"`
	Tokens  int   `json:"tokens"`
}

func encodeDoc(doc domain.Document) ([]byte, error) {
	return json.Marshal(docMeta{
		ModTime: doc.ModTime.Unix(),
		Pages:   doc.Pages,
		Tokens:  doc.Tokens,
	})
}

func decodeDoc(path string, data []byte) (domain.Document, error) {
	var meta docMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return domain.Document{}, fmt.Errorf("document %s: %w", path, err)
	}
	return domain.Document{
		Path:    path,
		ModTime: time.Unix(meta.ModTime, 0),
		Pages:   meta.Pages,
		Tokens:  meta.Tokens,
	}, nil
}

func (s *BoltStore) PutDoc(doc domain.Document) error {
	return s.PutDocs([]domain.Document{doc})
}

// PutDocs records a batch of documents in one transaction.
func (s *BoltStore) PutDocs(docs []domain.Document) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketDocs)
		for _, doc := range docs {
			data, err := encodeDoc(doc)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(doc.Path), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) GetDoc(path string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(path))
		if data == nil {
			return fmt.Errorf("document %s: %w", path, domain.ErrNotFound)
		}
		var err error
		doc, err = decodeDoc(path, data)
		return err
	})
	return doc, err
}

func (s *BoltStore) DeleteDoc(path string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).Delete([]byte(path))
	})
}

// ListDocs returns every recorded document ordered by path.
func (s *BoltStore) ListDocs() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			doc, err := decodeDoc(string(k), v)
			if err != nil {
				return err
			}
			docs = append(docs, doc)
			return nil
		})
	})
	return docs, err
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
