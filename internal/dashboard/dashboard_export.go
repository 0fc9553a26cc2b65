package dashboard

import (
	"github.com/xuri/excelize/v2"
)

const (
	personalSheet       = "Personal"
	organizationalSheet = "Organizational"
	exportDateLayout    = "2006-01-02 15:04"
)

var exportColumns = []string{
	"Request ID", "Request Type", "Requested By", "Submitted", "Status", "Current Approver",
}

func renderWorkbook(personal, organizational []Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", personalSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(organizationalSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for _, sheet := range []struct {
		name    string
		entries []Entry
	}{
		{personalSheet, personal},
		{organizationalSheet, organizational},
	} {
		if err := writeSheet(f, sheet.name, sheet.entries, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, entries []Entry, headerStyle int) error {
	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, e := range entries {
		row := []interface{}{
			e.RequestID,
			e.RequestType,
			e.SubmittedByName,
			e.SubmittedDate.Format(exportDateLayout),
			string(e.Status),
			e.CurrentApproverName,
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
