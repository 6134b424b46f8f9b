package catalog

import (
	"net/http"

	requestutil "github.com/hondana-dev/hondana/internal/platform/request"
	"github.com/hondana-dev/hondana/internal/platform/respond"
)

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var payload bookCreatePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := parseAuthorInputs(payload.Authors)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := BookCreateInput{
		Title:   payload.Title,
		Price:   payload.Price,
		Authors: authors,
	}
	if payload.PublicationStatus != "" {
		status, err := ParsePublicationStatus(payload.PublicationStatus)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		input.Status = status
	}

	book, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, newBookResponse(*book))
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newBookResponse(*book))
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload bookUpdatePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	authors, err := parseAuthorInputs(payload.Authors)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.UpdateBook(request.Context(), bookID, BookUpdateInput{
		Title:   payload.Title,
		Price:   payload.Price,
		Authors: authors,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newBookResponse(*book))
}

func (handler *Handler) updatePublicationStatus(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload statusPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	status, err := ParsePublicationStatus(payload.PublicationStatus)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.UpdatePublicationStatus(request.Context(), bookID, status)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newBookResponse(*book))
}

func (handler *Handler) publishBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.PublishBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newBookResponse(*book))
}
