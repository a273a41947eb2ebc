// Package job executes a configured batch of indicator columns over a
// bar series and assembles the result frame.
package job

import (
	"fmt"

	"taframe/config"
	"taframe/internal/frame"
	"taframe/internal/indicator"
	"taframe/internal/model"
)

// Run computes every configured column over bars, in declaration order,
// and appends each to a fresh frame. Boolean columns (new_high) are
// kept by name so later frequency columns can reference them via keys.
func Run(cfg *config.Config, bars model.Series) (*frame.Frame, error) {
	f := frame.New(bars)
	boolCols := make(map[string][]bool)

	for _, col := range cfg.Columns {
		switch col.Indicator {
		case config.IndSMA:
			vals, err := indicator.MovingAvg(bars, model.Field(col.Field), col.Lag)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
			if err := f.AppendFloats(col.Name, vals); err != nil {
				return nil, err
			}

		case config.IndEMA:
			vals, err := indicator.EMA(bars, model.Field(col.Field), col.Lag)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
			if err := f.AppendFloats(col.Name, vals); err != nil {
				return nil, err
			}

		case config.IndMACD:
			vals := indicator.MACD(bars, col.Slow, col.Fast, col.Signal)
			if err := f.AppendFloats(col.Name, vals); err != nil {
				return nil, err
			}

		case config.IndATR:
			vals, err := indicator.ATR(bars, col.Lag, col.Normalize)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
			if err := f.AppendFloats(col.Name, vals); err != nil {
				return nil, err
			}

		case config.IndRSI:
			if err := f.AppendFloats(col.Name, indicator.RSI(bars, col.Lag)); err != nil {
				return nil, err
			}

		case config.IndGaps:
			if err := f.AppendFloats(col.Name, indicator.Gaps(bars)); err != nil {
				return nil, err
			}

		case config.IndPctChange:
			vals, err := indicator.PercentChange(bars, col.Lag)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", col.Name, err)
			}
			if err := f.AppendFloats(col.Name, vals); err != nil {
				return nil, err
			}

		case config.IndNewHigh:
			vals := indicator.NewHigh(bars)
			boolCols[col.Name] = vals
			if err := f.AppendBools(col.Name, vals); err != nil {
				return nil, err
			}

		case config.IndFrequency:
			cols := make([][]bool, 0, len(col.Keys))
			for _, key := range col.Keys {
				bc, ok := boolCols[key]
				if !ok {
					return nil, fmt.Errorf("column %s: key %q is not a boolean column declared earlier", col.Name, key)
				}
				cols = append(cols, bc)
			}
			if err := f.AppendInts(col.Name, indicator.Frequency(cols...)); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("column %s: unknown indicator %q", col.Name, col.Indicator)
		}
	}

	return f, nil
}
