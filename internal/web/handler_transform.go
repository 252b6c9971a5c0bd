package web

import (
	"errors"
	"io"
	"net/http"

	"github.com/crabe/delivnote/internal/apperr"
	"github.com/crabe/delivnote/internal/domain"
	"github.com/crabe/delivnote/internal/payload"
	"github.com/crabe/delivnote/internal/vision"
)

const maxUploadSize = 50 * 1024 * 1024 // 50 MB

// handleTransform accepts a multipart form with note scans under "files"
// and/or a structured payload under "items_json" (which bypasses the vision
// call), plus an optional "model" override, and responds with the compiled
// PDF as an attachment.
func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	note, err := s.noteFromRequest(r)
	if err != nil {
		s.writeTransformError(w, err)
		return
	}

	result, err := s.transformer.Transform(r.Context(), note)
	if err != nil {
		s.writeTransformError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="bon_livraison.pdf"`)
	if _, err := w.Write(result.PDF); err != nil {
		s.logger.Error("write pdf response failed", "error", err)
	}
}

// noteFromRequest builds the validated note, preferring a structured payload
// over image extraction when both are supplied.
func (s *Server) noteFromRequest(r *http.Request) (*domain.Note, error) {
	if file, _, err := r.FormFile("items_json"); err == nil {
		defer func() {
			if cerr := file.Close(); cerr != nil {
				s.logger.Error("failed to close items_json upload", "error", cerr)
			}
		}()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, apperr.Validationf("failed to read items_json: %v", err)
		}
		return payload.Decode(data)
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		return nil, apperr.Validationf("send note images or a structured items_json file")
	}

	images := make([]vision.Image, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, apperr.Validationf("failed to open upload %q: %v", header.Filename, err)
		}
		data, err := io.ReadAll(file)
		if cerr := file.Close(); cerr != nil {
			s.logger.Error("failed to close image upload", "filename", header.Filename, "error", cerr)
		}
		if err != nil {
			return nil, apperr.Validationf("failed to read upload %q: %v", header.Filename, err)
		}
		mimeType, ok := vision.SniffMIME(data)
		if !ok {
			return nil, apperr.Validationf("unsupported image format for %q", header.Filename)
		}
		images = append(images, vision.Image{Data: data, MIMEType: mimeType})
	}

	model := r.FormValue("model")
	if model == "" {
		model = s.defaultModel
	}
	extractor := s.newExtractor(model)
	if extractor == nil {
		return nil, apperr.Validationf("no vision backend available on this server; send items_json instead")
	}
	return vision.ExtractNote(r.Context(), extractor, images)
}

// writeTransformError maps the pipeline error taxonomy onto HTTP statuses:
// input problems are the client's fault, collaborator failures are ours.
func (s *Server) writeTransformError(w http.ResponseWriter, err error) {
	var (
		verr *apperr.ValidationError
		ferr *apperr.FormatError
		eerr *apperr.EmptyDocumentError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &ferr), errors.As(err, &eerr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Error("transform failed", "error", err)
		http.Error(w, "transformation failed", http.StatusInternalServerError)
	}
}
