package shopify

// One bounded page covers the whole catalog; the storefront sells a small
// lineup and Shopify caps page size anyway.
const productsQuery = `
  query ProductsQuery {
    products(first: 50) {
      edges {
        node {
          title
          handle
          featuredImage {
            url
            altText
          }
          priceRange {
            minVariantPrice {
              amount
              currencyCode
            }
          }
          category: metafield(namespace: "custom", key: "category") {
            value
          }
          model: metafield(namespace: "custom", key: "model") {
            value
          }
        }
      }
    }
  }
`

const productByHandleQuery = `
  query ProductByHandleQuery($handle: String!) {
    productByHandle(handle: $handle) {
      title
      handle
      description
      featuredImage {
        url
        altText
      }
      images(first: 10) {
        edges {
          node {
            url
            altText
          }
        }
      }
      variants(first: 50) {
        edges {
          node {
            id
            title
            availableForSale
            price {
              amount
              currencyCode
            }
            image {
              url
              altText
            }
          }
        }
      }
    }
  }
`
