package store

import (
	"context"
	"fmt"

	"github.com/abhisek/egghunt/ent"
	"github.com/abhisek/egghunt/ent/discoveryevent"
)

func (r *eventRepo) AppendDiscoveryEvent(ctx context.Context, data DiscoveryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.DiscoveryEvent.Create().
		SetSequence(seqNum).
		SetItemID(data.ItemID).
		SetName(data.Name).
		SetCategory(data.Category).
		SetRarity(data.Rarity).
		SetSessionID(data.SessionID).
		SetConfidence(data.Confidence).
		SetNearMisses(data.NearMisses).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save discovery event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryDiscoveryEvents(ctx context.Context, opts QueryOpts) ([]DiscoveryEventRecord, error) {
	query := r.client.DiscoveryEvent.Query().
		Order(ent.Desc(discoveryevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(discoveryevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(discoveryevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(discoveryevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(discoveryevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query discovery events: %w", err)
	}

	records := make([]DiscoveryEventRecord, len(events))
	for i, e := range events {
		records[i] = DiscoveryEventRecord{
			ItemID:     e.ItemID,
			Name:       e.Name,
			Category:   e.Category,
			Rarity:     e.Rarity,
			SessionID:  e.SessionID,
			Confidence: e.Confidence,
			NearMisses: e.NearMisses,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) DiscoveryCounts(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.DiscoveryEvent.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query discovery counts: %w", err)
	}

	byRarity := make(map[string]int)
	for _, e := range events {
		byRarity[e.Rarity]++
	}
	return byRarity, len(events), nil
}
