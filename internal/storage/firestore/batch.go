package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// maxBatchWrites is the Firestore limit of writes per committed batch
const maxBatchWrites = 500

// chunk is one atomic group of writes.
type chunk interface {
	update(ref *firestore.DocumentRef, updates []firestore.Update)
	delete(ref *firestore.DocumentRef)
	commit(ctx context.Context) error
}

// writeBatchChunk commits through a WriteBatch. BulkWriter is not used
// because it applies writes independently and a chunk must land as a unit.
type writeBatchChunk struct {
	//lint:ignore SA1019 each chunk must commit atomically
	batch *firestore.WriteBatch
}

func (c writeBatchChunk) update(ref *firestore.DocumentRef, updates []firestore.Update) {
	c.batch.Update(ref, updates)
}

func (c writeBatchChunk) delete(ref *firestore.DocumentRef) {
	c.batch.Delete(ref)
}

func (c writeBatchChunk) commit(ctx context.Context) error {
	_, err := c.batch.Commit(ctx)
	return err
}

// batchWriter groups writes into chunks and commits one whenever the
// per-batch limit is reached. Chunks already committed stay committed
// if a later one fails.
type batchWriter struct {
	newChunk  func() chunk
	chunk     chunk
	pending   int
	committed int
	limit     int
}

func newBatchWriter(client *firestore.Client) *batchWriter {
	return &batchWriter{
		newChunk: func() chunk {
			//lint:ignore SA1019 each chunk must commit atomically
			return writeBatchChunk{batch: client.Batch()}
		},
		limit:    maxBatchWrites,
	}
}

func (w *batchWriter) current() chunk {
	if w.chunk == nil {
		w.chunk = w.newChunk()
	}
	return w.chunk
}

func (w *batchWriter) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	w.current().update(ref, updates)
	return w.added(ctx)
}

func (w *batchWriter) delete(ctx context.Context, ref *firestore.DocumentRef) error {
	w.current().delete(ref)
	return w.added(ctx)
}

func (w *batchWriter) added(ctx context.Context) error {
	w.pending++
	if w.pending >= w.limit {
		return w.flush(ctx)
	}
	return nil
}

// flush commits the pending chunk; it is a no-op when nothing is queued
func (w *batchWriter) flush(ctx context.Context) error {
	if w.pending == 0 {
		return nil
	}

	if err := w.chunk.commit(ctx); err != nil {
		return fmt.Errorf("commit batch of %d writes (%d already committed): %w", w.pending, w.committed, err)
	}

	w.committed += w.pending
	w.pending = 0
	w.chunk = nil
	return nil
}
