package batch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"codeberg.org/snonux/hanki/internal/anki"
	"codeberg.org/snonux/hanki/internal/card"
	"codeberg.org/snonux/hanki/internal/dict"
	"codeberg.org/snonux/hanki/internal/tokenizer"
)

// Summary reports what a batch run produced.
type Summary struct {
	Words     int
	Sentences int
	Skipped   int
	Failed    int
}

// Processor fans rows out across a bounded worker pool and accumulates
// the finished cards in input order.
type Processor struct {
	dictionary *dict.Dictionary
	builder    *card.Builder
	workers    int
	log        zerolog.Logger
}

// NewProcessor creates a processor running up to workers rows concurrently.
func NewProcessor(dictionary *dict.Dictionary, builder *card.Builder, workers int, log zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		dictionary: dictionary,
		builder:    builder,
		workers:    workers,
		log:        log,
	}
}

type rowResult struct {
	word     *card.Word
	sentence *card.Sentence
	err      error
}

// Process builds cards for every row and adds them to the generator.
// Individual row failures are logged and counted, they do not abort the
// remaining rows.
func (p *Processor) Process(ctx context.Context, rows []Row, gen *anki.Generator) (Summary, error) {
	results := make([]rowResult, len(rows))

	workers := pool.New().WithMaxGoroutines(p.workers)
	for i, row := range rows {
		workers.Go(func() {
			results[i] = p.processRow(ctx, row)
		})
	}
	workers.Wait()

	var summary Summary
	for i, res := range results {
		switch {
		case res.err != nil:
			p.log.Error().Err(res.err).Str("row", rows[i].Hanzi).Msg("Failed to process row")
			summary.Failed++
		case res.word != nil:
			gen.AddWord(*res.word)
			summary.Words++
		case res.sentence != nil:
			gen.AddSentence(*res.sentence)
			summary.Sentences++
		default:
			summary.Skipped++
		}
	}

	if len(rows) > 0 && summary.Failed == len(rows) {
		return summary, fmt.Errorf("all %d rows failed", summary.Failed)
	}
	return summary, nil
}

func (p *Processor) processRow(ctx context.Context, row Row) (res rowResult) {
	defer func() {
		if r := recover(); r != nil {
			res = rowResult{err: fmt.Errorf("panic while processing row: %v", r)}
		}
	}()

	sentence := tokenizer.NewSentence(p.dictionary, row.Hanzi)
	p.log.Debug().Str("row", row.Hanzi).Int("tokens", len(sentence.Tokens)).Msg("Processing row")

	switch len(sentence.Tokens) {
	case 0:
		return rowResult{}
	case 1:
		word, err := p.builder.BuildWord(ctx, sentence.Tokens[0], row.Override)
		return rowResult{word: word, err: err}
	default:
		sent, err := p.builder.BuildSentence(ctx, sentence, row.Override)
		return rowResult{sentence: sent, err: err}
	}
}
