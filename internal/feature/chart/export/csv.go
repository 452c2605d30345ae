// Package export はConvertedSeriesのCSVエクスポートと再読み込みを提供します。
// 列名は対象通貨に対してパラメトリックで（例: close_eur）、ダウンストリームは
// 通貨を事前に知らなくても「対象通貨の終値」を列名から特定できます。
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"forex_backend/internal/feature/chart/domain/entity"
)

// Marshal は系列全体を時系列順（昇順）のCSVとして書き出します。
// 数値は最短の往復可能表現で出力され、再パースで元の値を復元できます。
// 未定義の移動平均セルは空欄になります。
func Marshal(w io.Writer, s entity.ConvertedSeries) error {
	cw := csv.NewWriter(w)

	windows := sortedWindows(s.MA)

	header := []string{
		"time",
		"open_" + strings.ToLower(s.Base),
		"high_" + strings.ToLower(s.Base),
		"low_" + strings.ToLower(s.Base),
		"close_" + strings.ToLower(s.Base),
		"fx_rate",
		"open_" + strings.ToLower(s.Target),
		"high_" + strings.ToLower(s.Target),
		"low_" + strings.ToLower(s.Target),
		"close_" + strings.ToLower(s.Target),
	}
	for _, win := range windows {
		header = append(header, fmt.Sprintf("ma_%d", win))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, b := range s.Bars {
		row := []string{
			b.Time.UTC().Format(time.RFC3339),
			formatFloat(b.Open),
			formatFloat(b.High),
			formatFloat(b.Low),
			formatFloat(b.Close),
			formatFloat(b.Rate),
			formatFloat(b.ConvOpen),
			formatFloat(b.ConvHigh),
			formatFloat(b.ConvLow),
			formatFloat(b.ConvClose),
		}
		for _, win := range windows {
			if v := s.MA[win][i]; v != nil {
				row = append(row, formatFloat(*v))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Parse はMarshalが出力したCSVを読み戻します。通貨コードと移動平均の
// ウィンドウはヘッダー行から復元されます。
func Parse(r io.Reader) (entity.ConvertedSeries, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return entity.ConvertedSeries{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 10 || header[0] != "time" {
		return entity.ConvertedSeries{}, fmt.Errorf("unexpected header: %v", header)
	}

	s := entity.ConvertedSeries{
		Base:   strings.ToUpper(strings.TrimPrefix(header[1], "open_")),
		Target: strings.ToUpper(strings.TrimPrefix(header[6], "open_")),
		MA:     map[int][]*float64{},
	}

	var windows []int
	for _, col := range header[10:] {
		w, err := strconv.Atoi(strings.TrimPrefix(col, "ma_"))
		if err != nil {
			return entity.ConvertedSeries{}, fmt.Errorf("parse indicator column %q: %w", col, err)
		}
		windows = append(windows, w)
		s.MA[w] = nil
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return entity.ConvertedSeries{}, err
		}

		tm, err := time.Parse(time.RFC3339, row[0])
		if err != nil {
			return entity.ConvertedSeries{}, fmt.Errorf("parse time %q: %w", row[0], err)
		}

		vals := make([]float64, 9)
		for i := range vals {
			vals[i], err = strconv.ParseFloat(row[i+1], 64)
			if err != nil {
				return entity.ConvertedSeries{}, fmt.Errorf("parse %s %q: %w", header[i+1], row[i+1], err)
			}
		}
		s.Bars = append(s.Bars, entity.ConvertedBar{
			Time:      tm,
			Open:      vals[0],
			High:      vals[1],
			Low:       vals[2],
			Close:     vals[3],
			Rate:      vals[4],
			ConvOpen:  vals[5],
			ConvHigh:  vals[6],
			ConvLow:   vals[7],
			ConvClose: vals[8],
		})

		for j, w := range windows {
			cell := row[10+j]
			if cell == "" {
				s.MA[w] = append(s.MA[w], nil)
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return entity.ConvertedSeries{}, fmt.Errorf("parse ma_%d %q: %w", w, cell, err)
			}
			s.MA[w] = append(s.MA[w], &v)
		}
	}

	return s, nil
}

// sortedWindows はMA列のウィンドウを昇順で返します。列順を決定的にするためです。
func sortedWindows(ma map[int][]*float64) []int {
	windows := make([]int, 0, len(ma))
	for w := range ma {
		windows = append(windows, w)
	}
	sort.Ints(windows)
	return windows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
