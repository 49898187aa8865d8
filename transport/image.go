package transport

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hendrawans/marketplace/constant"
	"github.com/hendrawans/marketplace/utils/errors"
)

const maxUploadBytes = 16 << 20 // 16 MiB

// UploadImage handler
// @Summary Upload an image to the blob store
// @Tags Image
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} transport.Response
// @Failure 400 {object} transport.Response
// @Router /image/upload [post]
func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	fileID, err := s.ImageApp.Upload(ctx, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"file_id": fileID})
}

// DownloadImage handler
// @Summary Download a stored image
// @Tags Image
// @Produce octet-stream
// @Param file_id path string true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} transport.Response
// @Router /image/download/{file_id} [get]
func (s *RestHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fileID := mux.Vars(r)["file_id"]

	w.Header().Set("Content-Type", "application/octet-stream")
	if err := s.ImageApp.Download(ctx, fileID, w); err != nil {
		writeError(w, err)
		return
	}
}

// DeleteImage handler
// @Summary Delete a stored image
// @Tags Image
// @Produce json
// @Param file_id path string true "File ID"
// @Success 200 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /image/delete/{file_id} [delete]
func (s *RestHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fileID := mux.Vars(r)["file_id"]

	if err := s.ImageApp.Delete(ctx, fileID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"file_id": fileID})
}
