// Package testdata holds source-page fixtures for extractor tests. Catalog
// and reseller fixtures encode the same logical package in the two different
// markups the source site serves.
package testdata

// CatalogPage is a standard /viaje/ page fixture.
const CatalogPage = `<!DOCTYPE html>
<html>
<head><title>Cancún Mágico</title></head>
<body>
  <h1>Cancún Mágico 5 días</h1>
  <div class="mt-precio">
    <span class="precio-monto">USD 1,299.00</span>
    <span class="impuestos-monto">$ 299.99</span>
  </div>
  <h3>Incluye</h3>
  <ul>
    <li>Vuelo redondo</li>
    <li>Hotel 4 estrellas</li>
    <li>Traslados aeropuerto - hotel - aeropuerto</li>
  </ul>
  <h3>No incluye</h3>
  <ul>
    <li>Propinas</li>
    <li>Gastos personales</li>
  </ul>
  <div class="itinerario">
    <div class="dia">
      <span class="numero">1</span>
      <h4>Llegada a Cancún</h4>
      <p>Recepción en el aeropuerto y traslado al hotel.</p>
    </div>
    <div class="dia">
      <span class="numero">2</span>
      <h4>Chichén Itzá</h4>
      <p>Visita guiada a la zona arqueológica.</p>
    </div>
  </div>
  <div class="salidas">
    <ul>
      <li>05/01/2026</li>
      <li>12/01/2026</li>
    </ul>
  </div>
</body>
</html>`

// ResellerPage is an alternate paquete.php page fixture for the same package
// as CatalogPage: same price and same inclusion lists, different markup.
const ResellerPage = `<!DOCTYPE html>
<html>
<head><title>Paquete MT-12117</title></head>
<body>
  <table class="detalle">
    <tr><td class="etiqueta">Precio por persona</td><td class="valor">$1,299.00 USD</td></tr>
    <tr><td class="etiqueta">Impuestos</td><td class="valor">299.99 USD</td></tr>
    <tr>
      <td class="etiqueta">Incluye</td>
      <td class="valor">
        <ul>
          <li>Vuelo redondo</li>
          <li>Hotel 4 estrellas</li>
          <li>Traslados aeropuerto - hotel - aeropuerto</li>
        </ul>
      </td>
    </tr>
    <tr>
      <td class="etiqueta">No incluye</td>
      <td class="valor">
        <ul>
          <li>Propinas</li>
          <li>Gastos personales</li>
        </ul>
      </td>
    </tr>
  </table>
  <table class="itinerario">
    <tr><td>Día 1</td><td>Llegada a Cancún</td><td>Recepción en el aeropuerto y traslado al hotel.</td></tr>
    <tr><td>Día 2</td><td>Chichén Itzá</td><td>Visita guiada a la zona arqueológica.</td></tr>
  </table>
  <select class="salidas">
    <option>05/01/2026</option>
    <option>12/01/2026</option>
  </select>
</body>
</html>`

// CatalogPageNoLists is a catalog page with pricing but without inclusion
// lists or itinerary, the typical first-pass partial extraction.
const CatalogPageNoLists = `<!DOCTYPE html>
<html>
<body>
  <h1>Escapada Riviera</h1>
  <div class="mt-precio">
    <span class="precio-monto">USD 849</span>
  </div>
</body>
</html>`

// CatalogPageNoPrice is a catalog page with inclusion lists but a price the
// site renders as text instead of an amount.
const CatalogPageNoPrice = `<!DOCTYPE html>
<html>
<body>
  <h1>Expedición Patagonia</h1>
  <div class="mt-precio">
    <span class="precio-monto">Consultar</span>
  </div>
  <h3>Incluye</h3>
  <ul>
    <li>Guía certificado</li>
  </ul>
</body>
</html>`
