package employeeerrors

import (
	"net/http"

	"kgb-anri/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Data pegawai tidak ditemukan",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Pegawai dengan NIP yang sama sudah terdaftar",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"ID pegawai tidak valid",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Format tanggal masuk tidak valid, gunakan YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
