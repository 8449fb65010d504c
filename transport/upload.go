package transport

import (
	"encoding/json"
	"net/http"

	"github.com/urbannest/furniture-store/constant"
	"github.com/urbannest/furniture-store/model"
	"github.com/urbannest/furniture-store/utils/errors"
	validatorx "github.com/urbannest/furniture-store/utils/validator"
)

// UploadImage handler
// @Summary Upload a single image
// @Description Forwards the file to the image service with the fixed transformation profile
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Success 200 {object} Response{data=model.UploadResult}
// @Failure 400 {object} Response
// @Router /upload [post]
func (s *RestHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")

	res, err := s.UploadApp.Upload(ctx, folder, header.Filename, header.Size, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteUpload handler
// @Summary Delete a stored image by public identifier
// @Tags Upload
// @Accept json
// @Produce json
// @Param request body model.DeleteUploadRequest true "Delete Request"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Security BearerAuth
// @Router /upload [delete]
func (s *RestHandler) DeleteUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.DeleteUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UploadApp.Delete(ctx, req.PublicID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]bool{"deleted": true})
}
