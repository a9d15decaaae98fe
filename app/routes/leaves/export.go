package leaves

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"work-sync-admin/app/routes/auth"
)

// ExportLeavesAPI writes the current filtered leave table to an Excel
// workbook.
func ExportLeavesAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := leavesFor(session).Load(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}
	filtered := filterLeaves(all, c.Query("name"), c.Query("leaveType"), c.Query("status"))

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Name", "Email", "Leave Type", "Reason", "Start Date", "End Date", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, l := range filtered {
		values := []string{l.Name, l.Email, string(l.LeaveType), l.Reason, l.StartDate, l.EndDate, string(l.Status)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("leave-requests-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
