package application

import (
	"fmt"

	"recaudit/internal/domain"
	"recaudit/internal/ports"
)

// Verify refreshes the inventory and reports a pass/fail summary for every
// (file type, path) pair. A missing file fails its check but never aborts
// the sweep; the whole range is always covered. The per-check results are
// returned for downstream consumers such as the audit index.
func (inv *Inventory) Verify(rep ports.Reporter) ([]domain.CheckResult, error) {
	if err := inv.Update(); err != nil {
		return nil, err
	}

	var results []domain.CheckResult
	for _, t := range domain.FileTypes {
		paths := inv.layout.PathsForType(t, inv.Subject(), inv.dates)
		for i, path := range paths {
			date := domain.AllDates
			if t == domain.FileTypeRaw {
				date = inv.dates[i]
			}
			result := domain.CheckResult{
				Subject:  inv.Subject(),
				Date:     date,
				FileType: t,
				PathName: path,
				Matching: inv.matching.WhereType(t).WherePath(path).FileNames(),
				Missing:  inv.missing.WhereType(t).WherePath(path).FileNames(),
			}
			inv.reportCheck(rep, result)
			results = append(results, result)
		}
	}
	return results, nil
}

func (inv *Inventory) reportCheck(rep ports.Reporter, result domain.CheckResult) {
	rep.Header(
		fmt.Sprintf("Checking %s %s files %s", result.Subject, result.FileType, result.Date),
		fmt.Sprintf("in path %s", result.PathName),
	)
	rep.Text(
		fmt.Sprintf("%d actual files match", len(result.Matching)),
		fmt.Sprintf("%d expected files missing", len(result.Missing)),
	)
	rep.Matching(result.Matching)
	rep.Missing(result.Missing)
	if result.Passed() {
		rep.Pass(fmt.Sprintf("%s %s files %s all files found", result.Subject, result.FileType, result.Date))
	} else {
		rep.Fail(fmt.Sprintf("%s %s files %s some files missing", result.Subject, result.FileType, result.Date))
	}
}
