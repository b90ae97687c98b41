package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/mkoval-dev/x3pl-dashboard/internal/handlers"
	"github.com/mkoval-dev/x3pl-dashboard/internal/importer"
	"github.com/mkoval-dev/x3pl-dashboard/test/helpers"
	"github.com/mkoval-dev/x3pl-dashboard/test/mocks"
)

func buildImportFile(t *testing.T, rows [][]string) []byte {
	t.Helper()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Лист1")
	require.NoError(t, err)
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, value := range cells {
			row.AddCell().SetString(value)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func newImportHandler(t *testing.T) (*handlers.ImportHandler, *mocks.MockInventoryGateway) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockInventoryGateway(ctrl)
	uploader := importer.NewUploader(gateway, importer.DefaultBatchSize, helpers.TestLogger())
	handler := handlers.NewImportHandler(uploader, importer.MaxFileSize, helpers.TestLogger())
	return handler, gateway
}

func TestImportExcel_HappyPath(t *testing.T) {
	handler, gateway := newImportHandler(t)
	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	content := buildImportFile(t, [][]string{
		{"Артикул", "Название"},
		{"123", "Widget"},
		{"456", "Гаджет"},
	})
	body, contentType := multipartUpload(t, "import.xlsx", content)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ImportExcel(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ImportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 0, resp.Failed)
	assert.Empty(t, resp.Warnings)
}

func TestImportExcel_PartialRowsReportedAsWarnings(t *testing.T) {
	handler, gateway := newImportHandler(t)
	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	content := buildImportFile(t, [][]string{
		{"Артикул", "Название"},
		{"123", "Widget"},
		{"", "без артикула"},
	})
	body, contentType := multipartUpload(t, "import.xlsx", content)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ImportExcel(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ImportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Processed)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "строка 3")
}

func TestImportExcel_ItemFailuresDoNotFailRequest(t *testing.T) {
	handler, gateway := newImportHandler(t)
	gateway.EXPECT().AddMinimal(gomock.Any(), gomock.Any()).Return(errors.New("duplicate")).Times(1)

	content := buildImportFile(t, [][]string{
		{"Артикул", "Название"},
		{"123", "Widget"},
	})
	body, contentType := multipartUpload(t, "import.xlsx", content)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ImportExcel(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ImportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "123")
}

func TestImportExcel_RejectsWrongExtension(t *testing.T) {
	handler, _ := newImportHandler(t)

	body, contentType := multipartUpload(t, "import.csv", []byte("shk,name\n1,x"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ImportExcel(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportExcel_RejectsMalformedStructure(t *testing.T) {
	handler, _ := newImportHandler(t)

	content := buildImportFile(t, [][]string{
		{"Код", "Описание"},
		{"123", "Widget"},
	})
	body, contentType := multipartUpload(t, "import.xlsx", content)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.ImportExcel(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "Артикул")
}

func TestImportExcel_RequiresFile(t *testing.T) {
	handler, _ := newImportHandler(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("comment", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ImportExcel(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
