package catalog

import (
	"net/http"

	requestutil "github.com/hondana-dev/hondana/internal/platform/request"
	"github.com/hondana-dev/hondana/internal/platform/respond"
	"github.com/hondana-dev/hondana/pkg/slice"
)

func (handler *Handler) createAuthor(writer http.ResponseWriter, request *http.Request) {
	var payload authorPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.CreateAuthor(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, newAuthorResponse(*author))
}

func (handler *Handler) updateAuthor(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload authorPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input, err := payload.toInput()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	author, err := handler.service.UpdateAuthor(request.Context(), authorID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newAuthorResponse(*author))
}

func (handler *Handler) getAuthorBooks(writer http.ResponseWriter, request *http.Request) {
	authorID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.GetAuthorBooks(request.Context(), authorID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response := authorBooksResponse{
		Author: newAuthorResponse(result.Author),
		// An author with no books serializes as an empty array, not null.
		Books: make([]bookSummaryResponse, 0, len(result.Books)),
	}
	response.Books = append(response.Books, slice.Map(result.Books, newBookSummaryResponse)...)

	respond.OK(writer, response)
}
