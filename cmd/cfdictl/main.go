// cfdictl concilia CFDI desde archivos locales y exporta el reporte histórico.
package main

func main() {
	Execute()
}
