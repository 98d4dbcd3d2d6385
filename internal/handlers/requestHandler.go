package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/adapter"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/adapter/utils"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/api"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/config"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/domain/brdModel"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/internal/ingest"
	"github.com/vikaspratap0818/BRD-Agent-HackFest-2.0-Hackethon-Project/pkg/logger_i"
)

var logRH *logger_i.Logger

// UploadHandler godoc
// @Summary      Submit a communication for analysis
// @Description  Accepts a multipart file upload, pasted text, or a meeting url and stores the extracted content as a document.
// @Tags         Upload
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        file      formData  file    false  "The txt, csv, md, pdf, docx or rtf file to upload"
// @Param        channel   formData  string  false  "Communication channel (email, slack, meeting)"
// @Param        inputType formData  string  false  "file | text | url"
// @Success      200  {object}  api.UploadResponse
// @Failure      400  {object}  api.ErrorResponse "No file, text or url provided"
// @Router       /api/upload [post]
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid context by request", "remote", r.RemoteAddr)
		return
	}

	var doc brdModel.Document
	var errMessage string
	var errCode int

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		doc, errMessage, errCode = buildDocumentFromForm(r)
	} else {
		doc, errMessage, errCode = buildDocumentFromJSON(r)
	}
	if errMessage != "" {
		WriteErrorResponse(w, errCode, errMessage)
		return
	}

	doc.Id = utils.GetNewUUID()
	doc.Content = ingest.Truncate(doc.Content)
	doc.UploadedAt = time.Now()

	if err := handlerInstance.service.DocumentStore.SaveDocument(r.Context(), doc); err != nil {
		logRH.Error("Failed to store document", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	writeJsonResponse(w, http.StatusOK, api.UploadResponse{
		Success:  true,
		FileId:   doc.Id,
		FileName: doc.FileName,
		Channel:  doc.Channel,
		Message:  "Data uploaded successfully. Ready for AI analysis.",
	})
}

// AnalyzeHandler godoc
// @Summary      Start analysis of an uploaded document
// @Description  Creates an asynchronous analysis job for the document and returns the job id plus the fixed step list to poll against.
// @Tags         Analysis
// @Produce      json
// @Param        fileId  path      string  true  "Document id returned by upload"
// @Success      200  {object}  api.AnalyzeResponse
// @Failure      404  {object}  api.ErrorResponse "File not found"
// @Router       /api/analyze/{fileId} [post]
func AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	fileId := utils.GetChiURLParam(r, "fileId")
	traceId := traceFromContext(r.Context())

	if _, found := GetDocument(fileId, traceId); !found {
		WriteErrorResponse(w, http.StatusNotFound, "File not found")
		return
	}

	newJob := CreateNewJob(fileId, traceId)
	writeJsonResponse(w, http.StatusOK, adapter.ToAnalyzeResponse(newJob))
}

// StatusHandler godoc
// @Summary      Poll analysis progress
// @Description  Returns completed steps, the current confidence score and, once complete, the generated BRD id.
// @Tags         Analysis
// @Produce      json
// @Param        id   path      string  true  "Analysis job id"
// @Success      200  {object}  api.StatusResponse
// @Failure      404  {object}  api.ErrorResponse "Analysis not found"
// @Router       /api/analysis/{id}/status [get]
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	id := utils.GetChiURLParam(r, "id")
	result, isFound := GetJobStatus(id, traceFromContext(r.Context()))
	if !isFound {
		WriteErrorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToStatusResponse(result))
}

// GetBRDHandler godoc
// @Summary      Fetch a generated BRD
// @Tags         BRD
// @Produce      json
// @Param        id   path      string  true  "BRD id"
// @Success      200  {object}  api.BRDResponse
// @Failure      404  {object}  api.ErrorResponse "BRD not found"
// @Router       /api/brd/{id} [get]
func GetBRDHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	result, found := handlerInstance.service.ResultStore.GetResult(r.Context(), utils.GetChiURLParam(r, "id"))
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, "BRD not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToBRDResponse(result))
}

// GetInsightsHandler godoc
// @Summary      Fetch just the structured insights of a BRD
// @Tags         BRD
// @Produce      json
// @Param        id   path      string  true  "BRD id"
// @Success      200  {object}  brdModel.Insights
// @Failure      404  {object}  api.ErrorResponse "BRD not found"
// @Router       /api/brd/{id}/insights [get]
func GetInsightsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	result, found := handlerInstance.service.ResultStore.GetResult(r.Context(), utils.GetChiURLParam(r, "id"))
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, "BRD not found")
		return
	}
	writeJsonResponse(w, http.StatusOK, result.Insights)
}

// ListBRDsHandler godoc
// @Summary      List all generated BRDs
// @Tags         BRD
// @Produce      json
// @Success      200  {array}  api.BRDResponse
// @Router       /api/brds [get]
func ListBRDsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	results, err := handlerInstance.service.ResultStore.ListResults(r.Context())
	if err != nil {
		logRH.Error("Failed to list results", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToBRDList(results))
}

// ChatHandler godoc
// @Summary      Ask a question about a generated BRD
// @Description  Runs retrieval over the document's stored chunks and answers grounded on them plus the extracted insights.
// @Tags         BRD
// @Accept       json
// @Produce      json
// @Param        id       path      string           true  "BRD id"
// @Param        request  body      api.ChatRequest  true  "The question"
// @Success      200  {object}  api.ChatReply
// @Failure      400  {object}  api.ErrorResponse "Missing brd or message"
// @Failure      500  {object}  api.ErrorResponse "Generation failed"
// @Router       /api/brd/{id}/chat [post]
func ChatHandler(w http.ResponseWriter, request *http.Request) {
	if !validateContext(request.Context()) {
		logRH.Warn("Invalid context by request", "remote", request.RemoteAddr)
		return
	}

	var requestData api.ChatRequest
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the chat handler reader", "error", err)
		}
	}(request.Body)
	if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad chat request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Missing brd or message")
		return
	}

	brdId := utils.GetChiURLParam(request, "id")
	reply, err := handlerInstance.analysisService.Chat(request.Context(), brdId, requestData.Message)
	if err != nil {
		switch {
		case errors.Is(err, brdModel.ErrNotFound), errors.Is(err, brdModel.ErrInvalidInput):
			WriteErrorResponse(w, http.StatusBadRequest, "Missing brd or message")
		default:
			logRH.Error("Chat failed", "brdId", brdId, "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJsonResponse(w, http.StatusOK, api.ChatReply{Reply: reply})
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         Operations
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /api/health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, api.HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// DashboardHandler godoc
// @Summary      Aggregate stats for the landing page
// @Tags         Operations
// @Produce      json
// @Success      200  {object}  api.DashboardResponse
// @Router       /api/dashboard [get]
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		return
	}
	results, err := handlerInstance.service.ResultStore.ListResults(r.Context())
	if err != nil {
		logRH.Error("Failed to list results for dashboard", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToDashboardResponse(results))
}

func buildDocumentFromForm(r *http.Request) (brdModel.Document, string, int) {
	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		return brdModel.Document{}, "File too large or bad request", http.StatusBadRequest
	}

	doc := brdModel.Document{
		Channel:   formValueOrDefault(r, "channel", "email"),
		InputType: brdModel.InputType(formValueOrDefault(r, "inputType", string(brdModel.InputFile))),
	}

	switch doc.InputType {
	case brdModel.InputFile:
		fileReader, fileMetadata, err := r.FormFile("file")
		if err != nil {
			return doc, "No file uploaded", http.StatusBadRequest
		}
		defer fileReader.Close()

		tempFile, err := os.CreateTemp("", "brd-upload-*")
		if err != nil {
			return doc, "Storage error", http.StatusInternalServerError
		}
		defer os.Remove(tempFile.Name())
		defer tempFile.Close()

		if _, err := io.Copy(tempFile, fileReader); err != nil {
			return doc, "Write error", http.StatusInternalServerError
		}

		content, err := ingest.ExtractFile(tempFile.Name(), fileMetadata.Filename)
		if err != nil {
			logRH.Warn("Extraction failed", "file", fileMetadata.Filename, "error", err)
			return doc, "Could not extract file content", http.StatusBadRequest
		}
		doc.FileName = fileMetadata.Filename
		doc.Content = content

	case brdModel.InputText:
		textData := r.FormValue("textData")
		if textData == "" {
			return doc, "No text provided", http.StatusBadRequest
		}
		doc.FileName = "Pasted Text Snippet"
		doc.Content = textData

	case brdModel.InputURL:
		urlData := r.FormValue("urlData")
		if urlData == "" {
			return doc, "No URL provided", http.StatusBadRequest
		}
		doc.FileName = urlData
		doc.Content = ingest.MeetingTranscript(urlData)

	default:
		return doc, "Unknown input type", http.StatusBadRequest
	}

	return doc, "", 0
}

func buildDocumentFromJSON(r *http.Request) (brdModel.Document, string, int) {
	var requestData api.UploadTextRequest
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		return brdModel.Document{}, "Bad request", http.StatusBadRequest
	}

	doc := brdModel.Document{
		Channel:   requestData.Channel,
		InputType: brdModel.InputType(requestData.InputType),
	}
	if doc.Channel == "" {
		doc.Channel = "email"
	}

	switch doc.InputType {
	case brdModel.InputText:
		if requestData.TextData == "" {
			return doc, "No text provided", http.StatusBadRequest
		}
		doc.FileName = "Pasted Text Snippet"
		doc.Content = requestData.TextData

	case brdModel.InputURL:
		if requestData.URLData == "" {
			return doc, "No URL provided", http.StatusBadRequest
		}
		doc.FileName = requestData.URLData
		doc.Content = ingest.MeetingTranscript(requestData.URLData)

	default:
		return doc, "File uploads must use multipart/form-data", http.StatusBadRequest
	}

	return doc, "", 0
}

func formValueOrDefault(r *http.Request, key string, fallback string) string {
	if value := r.FormValue(key); value != "" {
		return value
	}
	return fallback
}
