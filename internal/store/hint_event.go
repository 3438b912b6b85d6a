package store

import (
	"context"
	"fmt"

	"github.com/abhisek/egghunt/ent"
	"github.com/abhisek/egghunt/ent/hintevent"
)

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetHintIndex(data.HintIndex).
		SetHintText(data.HintText).
		SetSessionID(data.SessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryHintEvents(ctx context.Context, opts QueryOpts) ([]HintEventRecord, error) {
	query := r.client.HintEvent.Query().
		Order(ent.Desc(hintevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(hintevent.SequenceGT(opts.After))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query hint events: %w", err)
	}

	records := make([]HintEventRecord, len(events))
	for i, e := range events {
		records[i] = HintEventRecord{
			ItemID:    e.ItemID,
			HintIndex: e.HintIndex,
			HintText:  e.HintText,
			SessionID: e.SessionID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
