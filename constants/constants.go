package constants

// Payment status, the only value the payment workflow ever writes
const PAYMENT_STATUS_PROCESSED = "PROCESSED"

// Error responses
const NO_ORDERS_FOUND = "No orders found."
const ORDER_NOT_FOUND = "Order not found"
const PRODUCT_NOT_FOUND = "Product not found"
const PAYMENT_AMOUNT_MISMATCH = "The payment amount does not match the total price of the order."
const PAYMENT_CUSTOMER_MISMATCH = "The customer ID does not match the order."
const EXTERNAL_API_ERROR = "Error communicating with external API: "

// Success responses
const PAYMENT_PROCESSED = "Payment processed successfully"
const PAYMENT_STATUS_PREFIX = "Payment status is "
