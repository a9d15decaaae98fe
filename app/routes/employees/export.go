package employees

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"work-sync-admin/app/routes/auth"
)

// ExportEmployeesAPI writes the current filtered employee table to an
// Excel workbook. The same search filter as the table view applies.
func ExportEmployeesAPI(c *fiber.Ctx) error {
	session := auth.SessionFromCtx(c)

	all, err := employeesFor(session).Load(c.Context())
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"message": err.Error()})
	}
	filtered := filterEmployees(all, c.Query("search"))

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"Name", "Email", "Role", "Joining Date", "Mobile No", "DOB"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, e := range filtered {
		values := []string{e.Name, e.Email, e.Role, e.JoiningDate, e.MobileNo, e.DOB}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Failed to build workbook"})
	}

	filename := fmt.Sprintf("employees-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
