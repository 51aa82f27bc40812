package testsupport

// CatalogCSV is a small catalog in the name,file,attribution layout.
const CatalogCSV = `name,file,attribution
Bond Falls,bond.jpg,"<a href=""https://example.org"">Photo</a>"
Tahquamenon Falls,tq-generic.jpg,
Tahquamenon Falls State Park,tq.jpg,
Munising Falls,munising.jpg,
Agate Falls,/agate.jpg,
`

// CardsPage has two cards with placeholder images and one external image
// that must never be rewritten.
const CardsPage = `<!DOCTYPE html>
<html>
<head><title>Waterfalls</title></head>
<body>
<div class="grid">
  <div class="card">
    <img src="placeholder.svg" alt="">
    <h3>Bond Falls</h3>
    <p>A wide cascade near Paulding.</p>
  </div>
  <div class="card">
    <img src="assets/placeholder.svg" loading="lazy" alt="">
    <h3>Tahquamenon Falls State Park</h3>
    <p>Upper and lower falls.</p>
  </div>
  <div class="card">
    <img src="https://cdn.example.org/munising.jpg" alt="">
    <h3>Munising Falls</h3>
  </div>
</div>
</body>
</html>
`
