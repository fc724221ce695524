// File: internal/handler/pages/billing.go
package pages

import (
	"net/http"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/datetime"
	"github.com/labstack/echo/v4"

	"wakatimer/internal/api"
	"wakatimer/internal/handler"
	"wakatimer/internal/model"
	"wakatimer/internal/period"
	"wakatimer/internal/validation"
	"wakatimer/internal/view"
)

// renderClients 重新取得列表後輸出
func renderClients(c echo.Context, d *handler.Deps, status int, flash *view.Flash) error {
	clients, err := d.Backend.Clients(c.Request().Context(), token(c))
	if err != nil {
		return fetchFailed(c, d, err, "clients.html", "Clients", "Error fetching clients", view.Clients{})
	}
	return handler.Render(c, status, "clients.html", "Clients", flash, view.Clients{Clients: clients})
}

func ClientsHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderClients(c, d, http.StatusOK, nil)
	}
}

func clientInput(form api.ClientForm) model.ClientInput {
	return model.ClientInput{
		Name:       strings.TrimSpace(form.Name),
		Currency:   strings.ToUpper(strings.TrimSpace(form.Currency)),
		HourlyRate: form.HourlyRate,
		Projects:   splitList(form.Projects),
	}
}

// SaveClientHandler 沒有 :id 時建立，否則更新
func SaveClientHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.ClientForm
		if err := c.Bind(&form); err != nil {
			return renderClients(c, d, http.StatusBadRequest, view.ErrorFlash("Invalid client data"))
		}
		if err := c.Validate(&form); err != nil {
			return renderClients(c, d, http.StatusBadRequest, view.ErrorFlash(validation.Message(err)))
		}
		in := clientInput(form)
		if len(in.Projects) == 0 {
			return renderClients(c, d, http.StatusBadRequest, view.ErrorFlash("Select at least one project"))
		}

		ctx := c.Request().Context()
		var err error
		if id := c.Param("id"); id != "" {
			_, err = d.Backend.UpdateClient(ctx, token(c), id, in)
		} else {
			_, err = d.Backend.CreateClient(ctx, token(c), in)
		}
		if err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderClients(c, d, http.StatusOK, actionFailed(c, err, "Error saving client"))
		}
		return c.Redirect(http.StatusSeeOther, "/clients")
	}
}

func DeleteClientHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := d.Backend.DeleteClient(c.Request().Context(), token(c), c.Param("id")); err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderClients(c, d, http.StatusOK, actionFailed(c, err, "Error deleting client"))
		}
		return c.Redirect(http.StatusSeeOther, "/clients")
	}
}

func renderInvoices(c echo.Context, d *handler.Deps, status int, flash *view.Flash) error {
	ctx := c.Request().Context()
	invoices, err := d.Backend.Invoices(ctx, token(c))
	if err != nil {
		return fetchFailed(c, d, err, "invoices.html", "Invoices", "Error fetching invoices", view.Invoices{})
	}
	clients, err := d.Backend.Clients(ctx, token(c))
	if err != nil {
		return fetchFailed(c, d, err, "invoices.html", "Invoices", "Error fetching clients", view.Invoices{Invoices: invoices})
	}
	return handler.Render(c, status, "invoices.html", "Invoices", flash, view.Invoices{Invoices: invoices, Clients: clients})
}

func InvoicesHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderInvoices(c, d, http.StatusOK, nil)
	}
}

// invoiceInput 起日取當天開始，迄日取當天結束
func invoiceInput(form api.InvoiceForm) (model.InvoiceInput, bool) {
	start, err := period.ParseDate(form.StartDate, time.UTC)
	if err != nil {
		return model.InvoiceInput{}, false
	}
	end, err := period.ParseDate(form.EndDate, time.UTC)
	if err != nil || end.Before(start) {
		return model.InvoiceInput{}, false
	}
	return model.InvoiceInput{
		ClientID:  form.ClientID,
		StartDate: datetime.BeginOfDay(start).Format(time.RFC3339),
		EndDate:   datetime.EndOfDay(end).Format(time.RFC3339),
	}, true
}

func CreateInvoiceHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.InvoiceForm
		_ = c.Bind(&form)
		if err := c.Validate(&form); err != nil {
			return renderInvoices(c, d, http.StatusBadRequest, view.ErrorFlash("Client, start date and end date are required"))
		}
		in, ok := invoiceInput(form)
		if !ok {
			return renderInvoices(c, d, http.StatusBadRequest, view.ErrorFlash("End date must not be before start date"))
		}
		if _, err := d.Backend.CreateInvoice(c.Request().Context(), token(c), in); err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderInvoices(c, d, http.StatusOK, actionFailed(c, err, "Error creating invoice"))
		}
		return c.Redirect(http.StatusSeeOther, "/invoices")
	}
}

func DeleteInvoiceHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := d.Backend.DeleteInvoice(c.Request().Context(), token(c), c.Param("id")); err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderInvoices(c, d, http.StatusOK, actionFailed(c, err, "Error deleting invoice"))
		}
		return c.Redirect(http.StatusSeeOther, "/invoices")
	}
}
