package mysql

const upsertRestaurantSQL = `
INSERT INTO restaurants
  (id, position, name, specialty, address, phone, up_time, price_min, price_max, website,
   delivery, take_out, booking, parking)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position  = VALUES(position),
  name      = VALUES(name),
  specialty = VALUES(specialty),
  address   = VALUES(address),
  phone     = VALUES(phone),
  up_time   = VALUES(up_time),
  price_min = VALUES(price_min),
  price_max = VALUES(price_max),
  website   = VALUES(website),
  delivery  = VALUES(delivery),
  take_out  = VALUES(take_out),
  booking   = VALUES(booking),
  parking   = VALUES(parking)
`

// Dishes are replaced wholesale per restaurant inside the upsert transaction.
const deleteDishesSQL = `DELETE FROM dishes WHERE restaurant_id = ?`

const insertDishesPrefix = "INSERT INTO dishes\n  (restaurant_id, id, position, name, description, price, category)\nVALUES "

const insertSyncRunSQL = `
INSERT INTO sync_runs (id, started_at, finished_at, restaurants, dishes, pruned, status, error)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const restaurantColumns = `
  r.id, r.name, r.specialty, r.address, r.phone, r.up_time,
  r.price_min, r.price_max, r.website,
  r.delivery, r.take_out, r.booking, r.parking`

const listRestaurantsSQL = `SELECT` + restaurantColumns + `
FROM restaurants r
ORDER BY r.position, r.id
`

const getRestaurantSQL = `SELECT` + restaurantColumns + `
FROM restaurants r
WHERE r.id = ?
`

// Dishes joined with their owner, in catalog order.
const listDishesSQL = `
SELECT d.id, d.restaurant_id, d.name, d.description, d.price, d.category, r.name, r.specialty
FROM dishes d
JOIN restaurants r ON r.id = d.restaurant_id
ORDER BY r.position, r.id, d.position, d.id
`

const listDishesByRestaurantSQL = `
SELECT d.id, d.restaurant_id, d.name, d.description, d.price, d.category, r.name, r.specialty
FROM dishes d
JOIN restaurants r ON r.id = d.restaurant_id
WHERE d.restaurant_id = ?
ORDER BY d.position, d.id
`
