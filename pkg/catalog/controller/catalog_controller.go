package controller

import "github.com/labstack/echo/v4"

type CatalogController interface {
	List(c echo.Context) error
	Brands(c echo.Context) error
	Rated(c echo.Context) error
	Upsert(c echo.Context) error
	ImportCSV(c echo.Context) error
	ImportURL(c echo.Context) error
}
