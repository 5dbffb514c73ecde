package handlers

import (
	"fmt"
	"net/http"
	"time"

	"humanizer-backend/database"
	"humanizer-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GET /api/export
// Downloads the caller's project history as a spreadsheet.
func ExportExcel(c *gin.Context) {
	userID := getUserID(c)

	projectService := services.ProjectService{DB: database.DB}
	projects, err := projectService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load projects"})
		return
	}

	// 1. Build the workbook
	f := excelize.NewFile()
	sheetName := "Projects"
	f.SetSheetName("Sheet1", sheetName)

	// 2. Header row
	headers := []string{"No", "Title", "Original Text", "Humanized Text", "Created", "Updated"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	styleHeader, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetCellStyle(sheetName, "A1", "F1", styleHeader)

	// 3. Data rows
	row := 2
	for i, p := range projects {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), p.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), p.OriginalText)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), p.HumanizedText)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), p.CreatedAt.Format("02-01-2006 15:04"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), p.UpdatedAt.Format("02-01-2006 15:04"))
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 5)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "D", 50)
	f.SetColWidth(sheetName, "E", "F", 18)

	// 4. Send as attachment
	fileName := fmt.Sprintf("Humanizer_Projects_%s.xlsx", time.Now().Format("20060102"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate excel"})
	}
}
