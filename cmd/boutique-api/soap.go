package main

import (
	_ "embed"
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lmdupont/boutique-api/internal/product"
)

// Legacy SOAP 1.2 binding. The only operation is CreateProduct; everything
// else about products goes through the JSON API.

//go:embed productsService.wsdl
var productsWSDL []byte

type soapEnvelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Body    soapBody `xml:"Body"`
}

type soapBody struct {
	CreateProduct *createProductCall `xml:"CreateProduct"`
}

type createProductCall struct {
	Name  string `xml:"name"`
	About string `xml:"about"`
	Price string `xml:"price"`
}

type soapResponseEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	NS      string   `xml:"xmlns:soap,attr"`
	Body    any      `xml:"soap:Body"`
}

type createProductResultBody struct {
	Response createProductResult `xml:"CreateProductResponse"`
}

type createProductResult struct {
	ID    int64  `xml:"id"`
	Name  string `xml:"name"`
	About string `xml:"about"`
	Price string `xml:"price"`
}

type soapFaultBody struct {
	Fault soapFault `xml:"soap:Fault"`
}

type soapFault struct {
	Code   soapFaultCode `xml:"soap:Code"`
	Reason soapReason    `xml:"soap:Reason"`
}

type soapFaultCode struct {
	Value   string       `xml:"soap:Value"`
	Subcode *soapSubcode `xml:"soap:Subcode,omitempty"`
}

type soapSubcode struct {
	Value string `xml:"soap:Value"`
}

type soapReason struct {
	Text string `xml:"soap:Text"`
}

const soapEnvNS = "http://www.w3.org/2003/05/soap-envelope"

func writeSOAP(c *gin.Context, status int, body any) {
	c.Header("Content-Type", "application/soap+xml; charset=utf-8")
	c.Status(status)
	_, _ = c.Writer.WriteString(xml.Header)
	enc := xml.NewEncoder(c.Writer)
	_ = enc.Encode(soapResponseEnvelope{NS: soapEnvNS, Body: body})
	_ = enc.Flush()
}

func writeSOAPFault(c *gin.Context, status int, code, subcode, reason string) {
	f := soapFault{
		Code:   soapFaultCode{Value: code},
		Reason: soapReason{Text: reason},
	}
	if subcode != "" {
		f.Code.Subcode = &soapSubcode{Value: subcode}
	}
	writeSOAP(c, status, soapFaultBody{Fault: f})
}

// wsdlHandler serves the contract on GET /soap?wsdl.
func wsdlHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/xml; charset=utf-8", productsWSDL)
	}
}

// soapCreateProductHandler handles POST /soap. Missing name, about or price
// (price absent, non-numeric or not strictly positive) yields a Sender fault
// with subcode rpc:BadArguments and HTTP 400.
func soapCreateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var env soapEnvelope
		if err := xml.NewDecoder(c.Request.Body).Decode(&env); err != nil || env.Body.CreateProduct == nil {
			writeSOAPFault(c, http.StatusBadRequest, "soap:Sender", "rpc:BadArguments", "Processing Error")
			return
		}
		call := env.Body.CreateProduct

		price, err := decimal.NewFromString(strings.TrimSpace(call.Price))
		if err != nil || call.Name == "" || call.About == "" || !price.IsPositive() {
			writeSOAPFault(c, http.StatusBadRequest, "soap:Sender", "rpc:BadArguments", "Processing Error")
			return
		}

		p := &product.Product{Name: call.Name, About: call.About, Price: price}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			writeSOAPFault(c, http.StatusInternalServerError, "soap:Receiver", "", "Processing Error")
			return
		}

		writeSOAP(c, http.StatusOK, createProductResultBody{Response: createProductResult{
			ID:    p.ID,
			Name:  p.Name,
			About: p.About,
			Price: p.Price.String(),
		}})
	}
}
