package handlers

import (
	"errors"
	"net/http"

	request "permitpro/internal/adapter/http/dto/request"
	response "permitpro/internal/adapter/http/dto/response"
	"permitpro/internal/adapter/http/middlewares"
	"permitpro/internal/domain/attachment"
	"permitpro/internal/domain/entities"
	"permitpro/internal/domain/lifecycle"
	"permitpro/internal/usecase"
	"permitpro/internal/usecase/interfaces"
	"permitpro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPackagePayload = pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)
	errMissingIdentity       = pkg.NewDomainErrorSimple("TOKEN_REQUIRED", "Access token required", http.StatusUnauthorized)
)

// PackageHandler handles HTTP requests for permit packages.

type PackageHandler struct {
	usecase usecase.IPackageUseCase
}

func NewPackageHandler(uc usecase.IPackageUseCase) *PackageHandler {
	return &PackageHandler{usecase: uc}
}

func actingIdentity(c *gin.Context) (entities.Identity, bool) {
	identity, ok := middlewares.IdentityFromContext(c)
	if !ok {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
	}
	return identity, ok
}

// List returns the packages visible to the caller, optionally filtered by
// the q query parameter (case-insensitive substring on customer name,
// property address and id).
func (h *PackageHandler) List(c *gin.Context) {
	identity, ok := actingIdentity(c)
	if !ok {
		return
	}

	pkgs, err := h.usecase.List(c.Request.Context(), identity, c.Query("q"))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackages(pkgs))
}

// Create creates a new draft package owned by the caller.
func (h *PackageHandler) Create(c *gin.Context) {
	identity, ok := actingIdentity(c)
	if !ok {
		return
	}

	var payload request.CreatePackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput(), identity)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPackage(created))
}

// GetByID returns one package with its documents and checklist.
func (h *PackageHandler) GetByID(c *gin.Context) {
	identity, ok := actingIdentity(c)
	if !ok {
		return
	}

	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), identity)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackage(p))
}

// UpdateStatus moves a package to the requested target status.
func (h *PackageHandler) UpdateStatus(c *gin.Context) {
	identity, ok := actingIdentity(c)
	if !ok {
		return
	}

	var payload request.UpdatePackageStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	event, ok := payload.ResolveEvent()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown target status", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), event, identity)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackage(updated))
}

// AttachDocument records a new document version on a package.
func (h *PackageHandler) AttachDocument(c *gin.Context) {
	identity, ok := actingIdentity(c)
	if !ok {
		return
	}

	var payload request.AttachDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.AttachDocument(c.Request.Context(), c.Param("id"), payload.ToInput(), identity)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func mapPackageError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, attachment.ErrEmptyName), errors.Is(err, attachment.ErrEmptyURL):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorized), errors.Is(err, lifecycle.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Caller may not perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed from the current state", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrGuardNotSatisfied):
		return pkg.NewDomainErrorSimple("GUARD_NOT_SATISFIED", "Package is missing fields required for this transition", http.StatusConflict)
	case errors.Is(err, attachment.ErrPackageClosed):
		return pkg.NewDomainErrorSimple("PACKAGE_CLOSED", "Completed packages do not accept documents", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Package was modified concurrently; retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
